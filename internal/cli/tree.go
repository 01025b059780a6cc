package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/errors"
	pointio "github.com/matzehuels/maxima/pkg/io"
	"github.com/matzehuels/maxima/pkg/maxima"
)

// treeCommand creates the tree command for inspecting the layer tree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output string
		dot    bool
	)

	cmd := &cobra.Command{
		Use:   "tree [input]",
		Short: "Render the layer tree of an input file (debug)",
		Long: `Render the layer tree of an input file.

Sweeps the input and draws the final balanced tree of layers: each node
shows the layer's highest y, its point count and its stored height. The
tree is rendered to SVG with Graphviz, or written as DOT with --dot.

This is a debugging aid; it writes neither output<N> nor the complexity log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := pointio.ImportPoints(args[0])
			if err != nil {
				return err
			}
			tree := maxima.Sweep(pts)
			if err := tree.Check(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "layer tree")
			}
			c.Logger.Debug("built layer tree", "layers", tree.Len(), "height", tree.Height())

			path := output
			var data []byte
			if dot {
				if path == "" {
					path = "layertree.dot"
				}
				data = []byte(tree.ToDOT())
			} else {
				if path == "" {
					path = defaultTreeFile
				}
				spinner := newSpinner(cmd.Context(), "Rendering layer tree...")
				spinner.Start()
				data, err = tree.RenderSVG(cmd.Context())
				spinner.Stop()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render layer tree")
				}
			}

			if err := writeFile(path, data); err != nil {
				return err
			}
			printSuccess("Layer tree of %s", args[0])
			printDetail("%d layers · height %d", tree.Len(), tree.Height())
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", fmt.Sprintf("output file (default %s, or layertree.dot with --dot)", defaultTreeFile))
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of SVG")

	return cmd
}

// writeFile writes data to path.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputOpen, err, "write %s", path)
	}
	return nil
}
