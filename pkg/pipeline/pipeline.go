// Package pipeline runs one complete maxima job: read an input file, sweep
// it into layers, write the output file, and append the operation count to
// the complexity log.
//
// The CLI's run, bench and tree commands all go through this package so
// naming, defaults, logging and error codes stay identical between them.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "input42"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output, len(result.Layers), result.Ops)
//
// Run individual stages:
//
//	pts, err := runner.Read(ctx, opts)
//	res := runner.Sweep(ctx, pts)
//	err = runner.Write(ctx, res.Layers, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/errors"
	pointio "github.com/matzehuels/maxima/pkg/io"
	"github.com/matzehuels/maxima/pkg/layertree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is the default output format.
	DefaultFormat = pointio.FormatText

	// DefaultLogFile is the default complexity log path.
	DefaultLogFile = complexity.DefaultLogFile
)

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Input is the path of the point file. Required.
	Input string `json:"input" toml:"input"`

	// Output is the output file path. Defaults to [pointio.OutputName] of
	// Input, in the working directory.
	Output string `json:"output,omitempty" toml:"output"`

	// Format is "text" (default) or "json".
	Format string `json:"format,omitempty" toml:"format"`

	// LogFile receives the "n,T" record. Defaults to [DefaultLogFile].
	LogFile string `json:"log_file,omitempty" toml:"log_file"`

	// NoLog skips the complexity log append.
	NoLog bool `json:"no_log,omitempty" toml:"no_log"`

	// Verify re-checks the result for completeness and ordering before
	// writing it.
	Verify bool `json:"verify,omitempty" toml:"verify"`

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *log.Logger `json:"-" toml:"-"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Output == "" && o.Input != "" {
		o.Output = pointio.OutputName(o.Input)
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.LogFile == "" {
		o.LogFile = DefaultLogFile
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks required fields.
func (o *Options) Validate() error {
	if err := errors.ValidateFilePath(o.Input); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "input")
	}
	o.SetDefaults()
	if err := errors.ValidateFilePath(o.Output); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "output")
	}
	if !o.NoLog {
		if err := errors.ValidateFilePath(o.LogFile); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "log file")
		}
	}
	return ValidateFormat(o.Format)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !pointio.ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Input and Output are the resolved file paths.
	Input  string
	Output string

	// Points is the number of input points.
	Points int

	// Layers is the decomposition, highest MaxY first.
	Layers []layertree.Layer

	// Ops is the operation counter T of the sweep.
	Ops int64

	// Placements tallies the assignment rule applied to each point.
	Placements map[layertree.Placement]int

	// Logged reports whether the "n,T" record was appended.
	Logged bool

	// Stats contains timing information.
	Stats Stats
}

// Sample returns the complexity-log record for the run.
func (r *Result) Sample() complexity.Sample {
	return complexity.Sample{N: r.Points, T: r.Ops}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ReadTime  time.Duration
	SweepTime time.Duration
	WriteTime time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.ReadTime + s.SweepTime + s.WriteTime
}

func (s Stats) String() string {
	return fmt.Sprintf("read %s, sweep %s, write %s", s.ReadTime, s.SweepTime, s.WriteTime)
}
