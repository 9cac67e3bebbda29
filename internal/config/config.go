// Package config loads puzzlegraph settings from a YAML file, PUZZLEGRAPH_*
// environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete puzzlegraph configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
	Tiles  TilesConfig  `mapstructure:"tiles" yaml:"tiles" json:"tiles"`
	Paths  PathsConfig  `mapstructure:"paths" yaml:"paths" json:"paths"`
	Beams  BeamsConfig  `mapstructure:"beams" yaml:"beams" json:"beams"`
}

// OutputConfig selects how answers are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// TilesConfig configures the tiles command.
type TilesConfig struct {
	// Orient is "strict" (reject counter-clockwise outlines) or "auto" (reverse them).
	Orient string `mapstructure:"orient" yaml:"orient" json:"orient"`
}

// PathsConfig configures the paths command.
type PathsConfig struct {
	From     string   `mapstructure:"from" yaml:"from" json:"from"`
	To       string   `mapstructure:"to" yaml:"to" json:"to"`
	Sequence []string `mapstructure:"sequence" yaml:"sequence" json:"sequence"`
	AnyOrder bool     `mapstructure:"any_order" yaml:"any_order" json:"any_order"`
}

// BeamsConfig configures the beams command.
type BeamsConfig struct {
	PrintMap bool `mapstructure:"print_map" yaml:"print_map" json:"print_map"`
}

// Orientation modes for TilesConfig.Orient.
const (
	OrientStrict = "strict"
	OrientAuto   = "auto"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validOutputs    = []string{"text", "json", "yaml"}
	validOrients    = []string{OrientStrict, OrientAuto}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    OutputConfig{Format: "text"},
		Tiles:     TilesConfig{Orient: OrientStrict},
		Paths: PathsConfig{
			From:     "you",
			To:       "out",
			Sequence: []string{"svr", "fft", "dac", "out"},
		},
	}
}

// Validate checks enumerated values and the paths sequence.
func (c *Config) Validate() error {
	if err := oneOf("log_level", c.LogLevel, validLogLevels); err != nil {
		return err
	}
	if err := oneOf("log_format", c.LogFormat, validLogFormats); err != nil {
		return err
	}
	if err := oneOf("output.format", c.Output.Format, validOutputs); err != nil {
		return err
	}
	if err := oneOf("tiles.orient", c.Tiles.Orient, validOrients); err != nil {
		return err
	}
	if strings.TrimSpace(c.Paths.From) == "" || strings.TrimSpace(c.Paths.To) == "" {
		return fmt.Errorf("%w: paths.from and paths.to must be set", ErrInvalidConfig)
	}
	if len(c.Paths.Sequence) < 2 {
		return fmt.Errorf("%w: paths.sequence needs a start and a target, got %v", ErrInvalidConfig, c.Paths.Sequence)
	}

	return nil
}

func oneOf(key, value string, valid []string) error {
	if !slices.Contains(valid, value) {
		return fmt.Errorf("%w: %s %q (must be one of: %s)", ErrInvalidConfig, key, value, strings.Join(valid, ", "))
	}

	return nil
}
