package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/layertree"
	"github.com/matzehuels/maxima/pkg/pipeline"
)

// runFlags holds the flags shared by run and the root command.
type runFlags struct {
	output  string
	format  string
	logFile string
	noLog   bool
	verify  bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default output<N> from the input name)")
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.DefaultFormat, "output format: text (default), json")
	cmd.Flags().StringVar(&f.logFile, "log-file", pipeline.DefaultLogFile, "complexity log to append \"n,T\" to")
	cmd.Flags().BoolVar(&f.noLog, "no-log", false, "do not append to the complexity log")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check the layers before writing them")
}

// resolveRun merges the flags over the config file.
func (c *CLI) resolveRun(cmd *cobra.Command, f runFlags) runFlags {
	cfg := c.config.Run
	flags := cmd.Flags()
	unlessChanged(flags, "format", &f.format, cfg.Format)
	unlessChanged(flags, "log-file", &f.logFile, cfg.LogFile)
	unlessChanged(flags, "no-log", &f.noLog, cfg.NoLog)
	unlessChanged(flags, "verify", &f.verify, cfg.Verify)
	return f
}

// options converts resolved flags into pipeline options for input.
func (f runFlags) options(input string, logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Input:   input,
		Output:  f.output,
		Format:  f.format,
		LogFile: f.logFile,
		NoLog:   f.noLog,
		Verify:  f.verify,
		Logger:  logger,
	}
}

// runCommand creates the run command that computes the layers of one input file.
func (c *CLI) runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Compute the multilayer maxima of an input file",
		Long: `Compute the multilayer maxima of an input file.

The input holds the number of points followed by that many "x y" pairs,
whitespace separated. The layers are written to output<N>, where N is the
first number in the input's file name, one "x, y" line per point and a
blank line after each layer. With --format json the layers are written as
a JSON document instead.

After a successful run "n,T" is appended to the complexity log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(cmd, args[0], flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// runPipeline runs one input through the pipeline and prints a summary.
func (c *CLI) runPipeline(cmd *cobra.Command, input string, f runFlags) error {
	opts := c.resolveRun(cmd, f).options(input, c.Logger)
	if err := pipeline.ValidateFormat(opts.Format); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %d layers", len(result.Layers)))

	printSuccess("Layers of %s", result.Input)
	printStats(result.Points, len(result.Layers), result.Ops)
	printPlacements(result.Placements)
	printFile(result.Output)
	if result.Logged {
		printDetail("appended %d,%d to %s", result.Points, result.Ops, opts.LogFile)
	}
	c.Logger.Debug("timings", "run", result.RunID, "stats", result.Stats.String(),
		"total", result.Stats.Total().Round(time.Microsecond))
	return nil
}

func printPlacements(p map[layertree.Placement]int) {
	printDetail("%d new · %d raised · %d joined",
		p[layertree.PlacementNew], p[layertree.PlacementRaise], p[layertree.PlacementJoin])
}
