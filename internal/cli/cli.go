package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/maxima/pkg/buildinfo"
	"github.com/matzehuels/maxima/pkg/observability"
	"github.com/matzehuels/maxima/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "maxima"

	// defaultPlotFile is the chart written by the plot command.
	defaultPlotFile = "nT_plot.pdf"

	// defaultTreeFile is the image written by the tree command.
	defaultTreeFile = "layertree.svg"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means the XDG default.
	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level. At debug level the pipeline's
// observability events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetRunHooks(hooks)
		observability.SetLogHooks(hooks)
	} else {
		observability.Reset()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Given a single argument that is not a subcommand, the root command behaves
// like "maxima run <input>".
func (c *CLI) RootCommand() *cobra.Command {
	var flags runFlags

	root := &cobra.Command{
		Use:   "maxima [input]",
		Short: "Maxima computes the multilayer maxima of 2D point sets",
		Long: `Maxima decomposes a set of 2D integer points into layers of maxima.

Points are swept in decreasing x order and folded into layers kept in a
height-balanced tree keyed by each layer's highest y. Layers are written
from the highest to the lowest, each sorted by y.

Every run appends "n,T" to the complexity log, where T counts the
primitive operations of the sweep. Use 'bench' to fill the log and 'plot'
to chart it.`,
		Version:      buildinfo.Get().Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runPipeline(cmd, args[0], flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/maxima/config.toml)")
	flags.register(root)

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
