package complexity

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultLogFile is the log file name used when none is configured.
const DefaultLogFile = "nT_data"

// Sample is one log record: n input points cost T units of work.
type Sample struct {
	N int   `json:"n"`
	T int64 `json:"t"`
}

// WriteSample writes s as a single "n,T" line.
func WriteSample(w io.Writer, s Sample) error {
	_, err := fmt.Fprintf(w, "%d,%d\n", s.N, s.T)
	return err
}

// AppendLog appends s to the log file at path, creating it if needed.
func AppendLog(path string, s Sample) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log %s: %w", path, err)
	}
	if err := WriteSample(f, s); err != nil {
		f.Close()
		return fmt.Errorf("append log %s: %w", path, err)
	}
	return f.Close()
}

// ReadSamples parses "n,T" lines from r.
// Malformed lines are reported with their 1-based line number.
func ReadSamples(r io.Reader) ([]Sample, error) {
	var out []Sample
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		nStr, tStr, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"n,T\", got %q", line, text)
		}
		n, err := strconv.Atoi(strings.TrimSpace(nStr))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid n: %w", line, err)
		}
		t, err := strconv.ParseInt(strings.TrimSpace(tStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid T: %w", line, err)
		}
		out = append(out, Sample{N: n, T: t})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadLog loads all samples from the log file at path.
func ReadLog(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	defer f.Close()
	return ReadSamples(f)
}
