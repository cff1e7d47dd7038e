package config // sort_bench configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SORT_BENCH_SEED=42.
const EnvPrefix = "SORT_BENCH"

// Config keys, shared with the CLI flag names.
const (
	KeyOutput  = "output"
	KeySeed    = "seed"
	KeyPlot    = "plot"
	KeyVerbose = "verbose"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Options is the effective configuration of one run.
type Options struct {
	// Output is the CSV results path.
	Output string `mapstructure:"output" toml:"output"`
	// Seed seeds dataset generation; 0 picks a time-derived seed.
	Seed uint64 `mapstructure:"seed" toml:"seed"`
	// Plot is an optional chart path (png, svg, pdf, ...). Empty disables the chart.
	Plot string `mapstructure:"plot" toml:"plot"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Options {
	return Options{Output: "performance_results.csv"}
}

// NewViper returns a viper instance carrying the defaults, environment
// overrides and, if cfgFile is set, that file. Flags are bound by the caller.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyPlot, d.Plot)
	v.SetDefault(KeyVerbose, d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return v, nil
}

// Load decodes and validates the options held by v.
func Load(v *viper.Viper) (Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that the options describe a runnable benchmark.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if o.Plot != "" && strings.TrimSpace(o.Plot) == "" {
		return fmt.Errorf("%w: plot path is whitespace", ErrInvalidConfig)
	}
	return nil
}

// TOML renders the options as a config file body.
func (o Options) TOML() (string, error) {
	b, err := toml.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(b), nil
}
