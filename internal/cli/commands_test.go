package cli

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/errors"
	pointio "github.com/matzehuels/maxima/pkg/io"
)

// execute runs the CLI with args in a fresh temporary working directory.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

// inTempDir switches to an empty working directory with no user config.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func writeFileT(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunCommand(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "input3", "3\n1 3\n2 2\n3 1\n")

	if err := execute(t, "run", "input3"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := readFile(t, "output3"), "3, 1\n2, 2\n1, 3\n\n"; got != want {
		t.Errorf("output3 = %q, want %q", got, want)
	}

	samples, err := complexity.ReadLog(complexity.DefaultLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 1 || samples[0].N != 3 || samples[0].T <= 0 {
		t.Errorf("log samples = %+v, want one sample with n=3", samples)
	}
}

func TestRootRunsInput(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "pts7.txt", "2\n0 0\n1 1\n")

	if err := execute(t, "pts7.txt", "--no-log"); err != nil {
		t.Fatalf("root: %v", err)
	}
	if got, want := readFile(t, "output7"), "1, 1\n\n0, 0\n\n"; got != want {
		t.Errorf("output7 = %q, want %q", got, want)
	}
	if _, err := os.Stat(complexity.DefaultLogFile); !os.IsNotExist(err) {
		t.Error("--no-log should not create the log")
	}
}

func TestRunCommandJSON(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "input1", "1\n4 5\n")

	if err := execute(t, "run", "input1", "-f", "json", "-o", "layers.json", "--no-log"); err != nil {
		t.Fatalf("run: %v", err)
	}

	var doc struct {
		Layers []struct {
			MaxY   int `json:"max_y"`
			Points []struct {
				X, Y int
			} `json:"points"`
		} `json:"layers"`
	}
	if err := json.Unmarshal([]byte(readFile(t, "layers.json")), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Layers) != 1 || doc.Layers[0].MaxY != 5 || len(doc.Layers[0].Points) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRunCommandUsesConfig(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "input1", "1\n4 5\n")
	writeFileT(t, "config.toml", "[run]\nformat = \"json\"\nlog_file = \"custom_log\"\n")

	if err := execute(t, "--config", "config.toml", "run", "input1"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := readFile(t, "output1"); !strings.HasPrefix(got, "{") {
		t.Errorf("output1 should be JSON from config, got %q", got)
	}
	if _, err := os.Stat("custom_log"); err != nil {
		t.Errorf("config log_file not used: %v", err)
	}
}

func TestRunCommandFlagOverridesConfig(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "input1", "1\n4 5\n")
	writeFileT(t, "config.toml", "[run]\nformat = \"json\"\n")

	if err := execute(t, "--config", "config.toml", "run", "input1", "--format", "text", "--no-log"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := readFile(t, "output1"), "4, 5\n\n"; got != want {
		t.Errorf("output1 = %q, want %q", got, want)
	}
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		code  errors.Code
	}{
		{"missing file", "", []string{"run", "absent"}, errors.ErrCodeInputOpen},
		{"bad point", "2\n1 1\nx 2\n", []string{"run", "input2"}, errors.ErrCodeInputParse},
		{"negative count", "-1\n", []string{"run", "input2"}, errors.ErrCodeInputParse},
		{"huge count", "999999999999\n", []string{"run", "input2"}, errors.ErrCodeAllocation},
		{"bad format", "0\n", []string{"run", "input2", "-f", "xml"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			if tt.input != "" {
				writeFileT(t, "input2", tt.input)
			}
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if _, err := os.Stat("output2"); !os.IsNotExist(err) {
				t.Error("no output should be written on failure")
			}
		})
	}
}

func TestGenCommand(t *testing.T) {
	inTempDir(t)

	if err := execute(t, "gen", "25", "--seed", "3", "--max", "10"); err != nil {
		t.Fatalf("gen: %v", err)
	}
	pts, err := pointio.ImportPoints("input25")
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 25 {
		t.Fatalf("generated %d points, want 25", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("point %v outside [0, 10]", p)
		}
	}

	if err := execute(t, "gen", "25", "--seed", "3", "--max", "10", "-o", "again"); err != nil {
		t.Fatalf("gen: %v", err)
	}
	if readFile(t, "input25") != readFile(t, "again") {
		t.Error("same seed should produce the same file")
	}
}

func TestGenCommandErrors(t *testing.T) {
	inTempDir(t)
	for _, args := range [][]string{
		{"gen", "many"},
		{"gen", "-3"},
		{"gen", "5", "--max", "-1"},
	} {
		if err := execute(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestGenCommandRejectsHugeBound(t *testing.T) {
	inTempDir(t)
	for _, bound := range []int{pointio.MaxCoord + 1, math.MaxInt} {
		err := execute(t, "gen", "3", "--seed", "1", "--max", strconv.Itoa(bound))
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("--max %d: error = %v, want INVALID_INPUT", bound, err)
		}
	}
	if _, err := os.Stat("input3"); !os.IsNotExist(err) {
		t.Error("no input should be written for a rejected bound")
	}

	if err := execute(t, "bench", "--from", "1", "--to", "2", "--max", strconv.Itoa(math.MaxInt)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bench: error = %v, want INVALID_INPUT", err)
	}
}

func TestGenCommandAcceptsLargestBound(t *testing.T) {
	inTempDir(t)
	if err := execute(t, "gen", "3", "--seed", "1", "--max", strconv.Itoa(pointio.MaxCoord)); err != nil {
		t.Fatalf("gen: %v", err)
	}
}

func TestBenchCommand(t *testing.T) {
	dir := inTempDir(t)

	if err := execute(t, "bench", "--from", "2", "--to", "6", "--step", "2", "--seed", "1", "--dir", "work"); err != nil {
		t.Fatalf("bench: %v", err)
	}

	samples, err := complexity.ReadLog(complexity.DefaultLogFile)
	if err != nil {
		t.Fatal(err)
	}
	var ns []int
	for _, s := range samples {
		ns = append(ns, s.N)
	}
	if len(ns) != 3 || ns[0] != 2 || ns[1] != 4 || ns[2] != 6 {
		t.Errorf("logged sizes = %v, want [2 4 6]", ns)
	}
	for _, name := range []string{"input2", "output2", "input6", "output6"} {
		if _, err := os.Stat(dir + "/work/" + name); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestBenchCommandClean(t *testing.T) {
	inTempDir(t)

	if err := execute(t, "bench", "--from", "1", "--to", "3", "--clean", "--dir", "work"); err != nil {
		t.Fatalf("bench: %v", err)
	}
	entries, err := os.ReadDir("work")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("--clean left %d files", len(entries))
	}
}

func TestBenchCommandErrors(t *testing.T) {
	inTempDir(t)
	for _, args := range [][]string{
		{"bench", "--from", "10", "--to", "5"},
		{"bench", "--step", "0"},
		{"bench", "--from", "-1"},
	} {
		if err := execute(t, args...); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%v: error = %v, want INVALID_INPUT", args, err)
		}
	}
}

func TestPlotCommand(t *testing.T) {
	inTempDir(t)
	writeFileT(t, complexity.DefaultLogFile, "10,120\n20,300\n40,700\n80,1600\n")

	if err := execute(t, "plot", "-o", "chart.png"); err != nil {
		t.Fatalf("plot: %v", err)
	}
	info, err := os.Stat("chart.png")
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("chart.png is empty")
	}
}

func TestPlotCommandErrors(t *testing.T) {
	inTempDir(t)

	if err := execute(t, "plot"); !errors.Is(err, errors.ErrCodeLogOpen) {
		t.Errorf("missing log: error = %v, want LOG_OPEN", err)
	}

	writeFileT(t, complexity.DefaultLogFile, "")
	if err := execute(t, "plot"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty log: error = %v, want INVALID_INPUT", err)
	}

	writeFileT(t, complexity.DefaultLogFile, "1,2\n")
	if err := execute(t, "plot", "-o", "chart.bmp"); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("bad extension: error = %v, want INTERNAL_ERROR", err)
	}
}

func TestTreeCommandDOT(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "input4", "4\n1 1\n2 2\n3 3\n4 4\n")

	if err := execute(t, "tree", "input4", "--dot"); err != nil {
		t.Fatalf("tree: %v", err)
	}
	dot := readFile(t, "layertree.dot")
	if !strings.HasPrefix(dot, "digraph LayerTree {") {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
	if got := strings.Count(dot, "maxY="); got != 4 {
		t.Errorf("DOT has %d layer nodes, want 4", got)
	}
	if _, err := os.Stat("output4"); !os.IsNotExist(err) {
		t.Error("tree should not write output4")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		if err := execute(t, "completion", shell); err != nil {
			t.Errorf("completion %s: %v", shell, err)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	if err := execute(t, "--version"); err != nil {
		t.Errorf("--version: %v", err)
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	inTempDir(t)
	if err := execute(t); err != nil {
		t.Errorf("root: %v", err)
	}
}

func TestBenchCommandUsesConfigLog(t *testing.T) {
	inTempDir(t)
	writeFileT(t, "config.toml", "[run]\nlog_file = \"bench_log\"\nno_log = true\n")

	if err := execute(t, "--config", "config.toml", "bench", "--from", "1", "--to", "2", "--dir", "work"); err != nil {
		t.Fatalf("bench: %v", err)
	}
	samples, err := complexity.ReadLog("bench_log")
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Errorf("bench_log has %d samples, want 2", len(samples))
	}
}

func TestResolveRun(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.config.Run = RunConfig{Format: "json", LogFile: "cfg_log", Verify: true}

	cmd := c.runCommand()
	if err := cmd.Flags().Parse([]string{"--log-file", "flag_log"}); err != nil {
		t.Fatal(err)
	}
	got := c.resolveRun(cmd, runFlags{format: "text", logFile: "flag_log"})
	want := runFlags{format: "json", logFile: "flag_log", verify: true}
	if got != want {
		t.Errorf("resolveRun() = %+v, want %+v", got, want)
	}

	opts := got.options("input9", c.Logger)
	if opts.Input != "input9" || opts.LogFile != "flag_log" || opts.Format != "json" || !opts.Verify {
		t.Errorf("options() = %+v", opts)
	}
}
