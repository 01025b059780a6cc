package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/errors"
	"github.com/matzehuels/maxima/pkg/geom"
	pointio "github.com/matzehuels/maxima/pkg/io"
	"github.com/matzehuels/maxima/pkg/layertree"
	"github.com/matzehuels/maxima/pkg/maxima"
	"github.com/matzehuels/maxima/pkg/observability"
)

// Runner executes pipeline runs.
//
// The Runner holds no per-run state; the same Runner can serve any number
// of sequential or concurrent runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs read → sweep → write → log for opts.Input.
//
// Any failure aborts the run; nothing is written after the failing stage.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	opts.Logger = logger

	result := &Result{RunID: runID, Input: opts.Input, Output: opts.Output}

	// Stage 1: Read
	readStart := time.Now()
	pts, err := r.Read(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Points = len(pts)
	result.Stats.ReadTime = time.Since(readStart)
	logger.Debug("read points", "input", opts.Input, "points", len(pts), "duration", result.Stats.ReadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Sweep
	sweepStart := time.Now()
	res := r.Sweep(ctx, pts)
	result.Layers = res.Layers
	result.Ops = res.Ops
	result.Placements = res.Placements
	result.Stats.SweepTime = time.Since(sweepStart)
	logger.Debug("computed layers", "layers", len(res.Layers), "ops", res.Ops, "duration", result.Stats.SweepTime)

	if opts.Verify {
		if err := maxima.Verify(pts, res); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "verify result")
		}
		logger.Debug("verified layers")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	writeStart := time.Now()
	if err := r.Write(ctx, res.Layers, opts); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)
	logger.Debug("wrote output", "output", opts.Output, "format", opts.Format, "duration", result.Stats.WriteTime)

	// Stage 4: Complexity log
	if !opts.NoLog {
		if err := r.AppendLog(ctx, opts.LogFile, result.Sample()); err != nil {
			return nil, err
		}
		result.Logged = true
	}

	return result, nil
}

// Read loads the points of opts.Input.
func (r *Runner) Read(ctx context.Context, opts Options) ([]geom.Point, error) {
	observability.Run().OnReadStart(ctx, opts.Input)
	start := time.Now()
	pts, err := pointio.ImportPoints(opts.Input)
	observability.Run().OnReadComplete(ctx, opts.Input, len(pts), time.Since(start), err)
	return pts, err
}

// Sweep computes the layers of pts with operation counting enabled.
func (r *Runner) Sweep(ctx context.Context, pts []geom.Point) *maxima.Result {
	var ops complexity.Counter
	start := time.Now()
	res := maxima.Compute(pts, maxima.WithCounter(&ops))
	observability.Run().OnSweepComplete(ctx, len(pts), len(res.Layers), res.Ops, time.Since(start))
	return res
}

// Write exports layers to opts.Output in opts.Format.
func (r *Runner) Write(ctx context.Context, layers []layertree.Layer, opts Options) error {
	opts.SetDefaults()
	start := time.Now()
	err := pointio.Export(layers, opts.Output, opts.Format)
	observability.Run().OnWriteComplete(ctx, opts.Output, opts.Format, time.Since(start), err)
	return err
}

// AppendLog appends s to the complexity log at path.
func (r *Runner) AppendLog(ctx context.Context, path string, s complexity.Sample) error {
	err := complexity.AppendLog(path, s)
	observability.Log().OnLogAppend(ctx, path, s.N, s.T, err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLogOpen, err, "append %d,%d to %s", s.N, s.T, path)
	}
	return nil
}
