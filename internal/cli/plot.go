package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/errors"
)

// plotCommand creates the plot command that charts the complexity log.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		logFile string
		output  string
		title   string
		fit     bool
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Chart the n,T complexity log",
		Long: `Chart the n,T complexity log.

Reads the "n,T" records appended by run and bench and draws T against n.
The image format follows the extension of --output (pdf, png, svg).

With --fit the least-squares model T ≈ a·n·log2(n) + b is overlaid and
reported together with its coefficient of determination.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Plot
			flags := cmd.Flags()
			unlessChanged(flags, "log-file", &logFile, c.config.Run.LogFile)
			unlessChanged(flags, "output", &output, cfg.Output)
			unlessChanged(flags, "title", &title, cfg.Title)
			unlessChanged(flags, "fit", &fit, cfg.Fit)

			samples, err := complexity.ReadLog(logFile)
			if err != nil {
				return errors.Wrap(errors.ErrCodeLogOpen, err, "read %s", logFile)
			}
			if len(samples) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s has no samples; run 'maxima bench' first", logFile)
			}
			c.Logger.Debug("read samples", "path", logFile, "samples", len(samples))

			var model complexity.Model
			if fit {
				model, err = complexity.Fit(samples)
				if err != nil {
					printWarning("no fit: %v", err)
					fit = false
				}
			}

			opts := complexity.PlotOptions{Title: title, Fit: fit}
			if err := complexity.Plot(samples, output, opts); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "plot")
			}

			printSuccess("Plotted %d samples", len(samples))
			printFile(output)
			if fit {
				printKeyValue("fit", fmt.Sprintf("T ≈ %.3f·n·log2(n) %+.3f", model.A, model.B))
				printKeyValue("R²", fmt.Sprintf("%.4f", model.R2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", complexity.DefaultLogFile, "complexity log to read")
	cmd.Flags().StringVarP(&output, "output", "o", defaultPlotFile, "output image (.pdf, .png, .svg)")
	cmd.Flags().StringVar(&title, "title", "", "chart title (default \"n vs. T\")")
	cmd.Flags().BoolVar(&fit, "fit", true, "overlay the n·log2(n) least-squares fit")

	return cmd
}
