package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/maxima/pkg/complexity"
	pointio "github.com/matzehuels/maxima/pkg/io"
	"github.com/matzehuels/maxima/pkg/pipeline"
)

// Config is the optional TOML configuration file. Command-line flags take
// precedence over every value set here.
//
//	[run]
//	format   = "json"
//	log_file = "runs/nT_data"
//	verify   = true
//
//	[gen]
//	max  = 500
//	seed = 7
//
//	[plot]
//	output = "nT_plot.png"
//	fit    = true
type Config struct {
	Run  RunConfig  `toml:"run"`
	Gen  GenConfig  `toml:"gen"`
	Plot PlotConfig `toml:"plot"`
}

// RunConfig holds defaults for run, bench and the root command.
type RunConfig struct {
	Format  string `toml:"format"`
	LogFile string `toml:"log_file"`
	NoLog   bool   `toml:"no_log"`
	Verify  bool   `toml:"verify"`
}

// GenConfig holds defaults for gen and bench.
type GenConfig struct {
	Max  int    `toml:"max"`
	Seed uint64 `toml:"seed"`
}

// PlotConfig holds defaults for plot.
type PlotConfig struct {
	Output string `toml:"output"`
	Title  string `toml:"title"`
	Fit    bool   `toml:"fit"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{
			Format:  pipeline.DefaultFormat,
			LogFile: complexity.DefaultLogFile,
		},
		Gen:  GenConfig{Max: pointio.DefaultCoordMax},
		Plot: PlotConfig{Output: defaultPlotFile, Fit: true},
	}
}

// ReadConfig decodes the TOML file at path over [DefaultConfig].
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("read config %s: unknown key %q", path, keys[0].String())
	}
	return cfg, nil
}

// loadConfig reads --config, or the default file if it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configFile(); err != nil {
			return nil
		}
	}

	cfg, err := ReadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// configFile returns the config path using XDG standard (~/.config/maxima/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// unlessChanged assigns v to *dst when the named flag was not set on the
// command line.
func unlessChanged[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if !flags.Changed(name) {
		*dst = v
	}
}
