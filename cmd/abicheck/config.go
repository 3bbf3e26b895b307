package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/errors"
)

// Config is the abicheck configuration file.
type Config struct {
	Arch     string   `toml:"arch"`
	Include  []string `toml:"include"`
	Exclude  []string `toml:"exclude"`
	Parallel int      `toml:"parallel"`
	Debug    bool     `toml:"debug"`
	NoColor  bool     `toml:"no_color"`
}

// ParseConfig reads a TOML configuration file.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read "+path)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	if cfg.Parallel < 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, "parallel must not be negative")
	}
	return cfg, nil
}

type checkOptions struct {
	configFile  string
	arch        string
	filter      []string
	exclude     []string
	parallel    int
	debug       bool
	noColor     bool
	interactive bool
}

func installCheckFlags(flags *pflag.FlagSet, opts *checkOptions) {
	flags.StringVarP(&opts.configFile, "config", "c", "", "Read options from a TOML file")
	flags.StringVar(&opts.arch, "arch", "", "Target architecture (default: host)")
	flags.StringSliceVarP(&opts.filter, "filter", "f", nil, "Only run cases matching these globs")
	flags.StringSliceVarP(&opts.exclude, "exclude", "x", nil, "Skip cases matching these globs")
	flags.IntVarP(&opts.parallel, "parallel", "p", 0, "Cases evaluated at once (default: GOMAXPROCS)")
	flags.BoolVarP(&opts.debug, "debug", "D", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable styled output")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Browse results interactively")
}

// resolveConfig loads the configuration file if one was given and applies
// every flag the user set on top of it.
func resolveConfig(flags *pflag.FlagSet, opts *checkOptions) (*Config, error) {
	cfg := &Config{}
	if opts.configFile != "" {
		var err error
		if cfg, err = ParseConfig(opts.configFile); err != nil {
			return nil, err
		}
	}
	if flags.Changed("arch") {
		cfg.Arch = opts.arch
	}
	if flags.Changed("filter") {
		cfg.Include = opts.filter
	}
	if flags.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if flags.Changed("parallel") {
		if opts.parallel < 0 {
			return nil, errors.InvalidInput(errors.PhaseConfig, "parallel must not be negative")
		}
		cfg.Parallel = opts.parallel
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	return cfg, nil
}

// targetArch resolves the configured architecture for a check run. The Go
// side is always measured on the host, so only the host architecture can be
// checked. An empty name means the host.
func targetArch(name string) (winabi.Arch, error) {
	host, known := winabi.HostArch()
	if name == "" {
		return host, nil
	}
	arch, err := winabi.ParseArch(name)
	if err != nil {
		return "", errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "arch")
	}
	if !known || arch != host {
		return "", errors.InvalidInput(errors.PhaseConfig,
			"check measures Go types on the host and cannot target "+arch.String()+"; use layout --arch to inspect it")
	}
	return arch, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
