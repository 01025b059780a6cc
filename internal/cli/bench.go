package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/errors"
	pointio "github.com/matzehuels/maxima/pkg/io"
	"github.com/matzehuels/maxima/pkg/pipeline"
)

// benchCommand creates the bench command that fills the complexity log.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		from, to, step int
		dir            string
		clean          bool
		gen            genFlags
		run            runFlags
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Generate and run random inputs for a range of sizes",
		Long: `Generate and run random inputs for a range of sizes.

For every n from --from to --to (inclusive, in steps of --step) a random
input<n> is written to --dir and run, appending "n,T" to the complexity
log. Use --clean to remove the generated inputs and outputs afterwards.

The benchmark stops at the first failing run, or when interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateRange("size", from, to); err != nil {
				return err
			}
			if step < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "step must be positive: %d", step)
			}
			if err := errors.ValidatePointCount(to); err != nil {
				return err
			}
			g, err := c.resolveGen(cmd, gen)
			if err != nil {
				return err
			}
			return c.runBench(cmd, benchParams{from: from, to: to, step: step, dir: dir, clean: clean, gen: g, run: run})
		},
	}

	cmd.Flags().IntVar(&from, "from", 10, "smallest input size")
	cmd.Flags().IntVar(&to, "to", 1000, "largest input size")
	cmd.Flags().IntVar(&step, "step", 1, "size increment")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory for generated inputs and outputs")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove generated inputs and outputs")
	gen.register(cmd)
	cmd.Flags().StringVarP(&run.format, "format", "f", pipeline.DefaultFormat, "output format: text (default), json")
	cmd.Flags().StringVar(&run.logFile, "log-file", pipeline.DefaultLogFile, "complexity log to append \"n,T\" to")
	cmd.Flags().BoolVar(&run.verify, "verify", false, "check the layers of every run")

	return cmd
}

type benchParams struct {
	from, to, step int
	dir            string
	clean          bool
	gen            genFlags
	run            runFlags
}

func (c *CLI) runBench(cmd *cobra.Command, p benchParams) error {
	ctx := cmd.Context()
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "create %s", p.dir)
	}

	run := c.resolveRun(cmd, p.run)
	run.noLog = false
	runner := c.newRunner()
	rng := p.gen.rng()
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, "Benchmarking...")
	spinner.Start()
	defer spinner.Stop()

	var runs int
	var last int64
	for n := p.from; n <= p.to; n += p.step {
		if err := ctx.Err(); err != nil {
			return err
		}
		spinner.Update("Benchmarking n=%d (%d/%d)", n, runs+1, (p.to-p.from)/p.step+1)

		input := filepath.Join(p.dir, pointio.InputName(n))
		if err := pointio.ExportInput(pointio.Generate(rng, n, p.gen.max), input); err != nil {
			spinner.StopWithError("Benchmark failed at n=%d", n)
			return err
		}
		c.Logger.Debug("created input", "path", input, "points", n)

		opts := run.options(input, c.Logger)
		opts.Output = filepath.Join(p.dir, pointio.OutputName(input))
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			spinner.StopWithError("Benchmark failed at n=%d", n)
			return err
		}
		runs++
		last = result.Ops

		if p.clean {
			os.Remove(input)
			os.Remove(result.Output)
		}
	}

	spinner.Stop()
	prog.done(fmt.Sprintf("Benchmarked %d sizes", runs))
	printSuccess("Ran %d inputs from n=%d to n=%d", runs, p.from, p.to)
	printKeyValue("last T", fmt.Sprint(last))
	printKeyValue("log", run.logFile)
	printNextStep("Plot the results", "maxima plot")
	return nil
}
