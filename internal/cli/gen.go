package cli

import (
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/errors"
	pointio "github.com/matzehuels/maxima/pkg/io"
)

// genFlags holds the flags shared by gen and bench.
type genFlags struct {
	max  int
	seed uint64
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.max, "max", pointio.DefaultCoordMax, "largest coordinate; points are drawn from [0, max]")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks a random one)")
}

// resolveGen merges the flags over the config file and validates them.
func (c *CLI) resolveGen(cmd *cobra.Command, f genFlags) (genFlags, error) {
	unlessChanged(cmd.Flags(), "max", &f.max, c.config.Gen.Max)
	unlessChanged(cmd.Flags(), "seed", &f.seed, c.config.Gen.Seed)
	if err := errors.ValidateRange("coordinate", 0, f.max); err != nil {
		return f, err
	}
	if f.max > pointio.MaxCoord {
		return f, errors.New(errors.ErrCodeInvalidInput, "coordinate bound %d too large (max %d)", f.max, pointio.MaxCoord)
	}
	return f, nil
}

// rng returns a PCG source for seed, or a randomly seeded one for 0.
func (f genFlags) rng() *rand.Rand {
	seed := f.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// genCommand creates the gen command that writes a random input file.
func (c *CLI) genCommand() *cobra.Command {
	var (
		flags  genFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen [n]",
		Short: "Write a random input file with n points",
		Long: `Write a random input file with n points.

Coordinates are drawn uniformly from [0, max]. The file is named input<n>
unless --output is given. Use --seed for reproducible files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid point count %q", args[0])
			}
			if err := errors.ValidatePointCount(n); err != nil {
				return err
			}
			gen, err := c.resolveGen(cmd, flags)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = pointio.InputName(n)
			}

			pts := pointio.Generate(gen.rng(), n, gen.max)
			if err := pointio.ExportInput(pts, path); err != nil {
				return err
			}
			c.Logger.Debug("generated points", "n", n, "max", gen.max, "seed", gen.seed)

			printSuccess("Generated %d points", n)
			printFile(path)
			printNextStep("Compute its layers", "maxima run "+path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default input<n>)")
	return cmd
}
