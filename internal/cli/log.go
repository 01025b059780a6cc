// Package cli implements the maxima command-line interface.
//
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Compute the layers of an input file and append to the n,T log
//   - gen: Write a random input file
//   - bench: Generate and run a range of input sizes
//   - plot: Chart the n,T log and fit T against n·log2(n)
//   - tree: Debug tool rendering the final layer tree with Graphviz
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs the pipeline's observability events.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Benchmarked 991 sizes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Observability
// =============================================================================

// logHooks logs pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnReadStart(_ context.Context, path string) {
	h.logger.Debug("reading", "input", path)
}

func (h *logHooks) OnReadComplete(_ context.Context, path string, points int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "input", path, "err", err)
		return
	}
	h.logger.Debug("read", "input", path, "points", points, "took", d)
}

func (h *logHooks) OnSweepComplete(_ context.Context, points, layers int, ops int64, d time.Duration) {
	h.logger.Debug("sweep", "points", points, "layers", layers, "ops", ops, "took", d)
}

func (h *logHooks) OnWriteComplete(_ context.Context, path, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "output", path, "err", err)
		return
	}
	h.logger.Debug("wrote", "output", path, "format", format, "took", d)
}

func (h *logHooks) OnLogAppend(_ context.Context, path string, n int, t int64, err error) {
	if err != nil {
		h.logger.Debug("log append failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("logged", "path", path, "n", n, "T", t)
}
