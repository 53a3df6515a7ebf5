package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/binop/binary"
	"github.com/calebcase/binop/datfile"
)

// Config holds the defaults applied to decimal operands and data files.
type Config struct {
	Width      int  `yaml:"width"`
	FixedPoint int  `yaml:"fixed_point"`
	Signed     bool `yaml:"signed"`
	Prefix     bool `yaml:"prefix"`

	REPL    REPLConfig    `yaml:"repl"`
	Logging LoggingConfig `yaml:"logging"`
}

// REPLConfig configures the interactive evaluator.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// LoggingConfig configures logrus.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Width:  32,
		Prefix: true,
		REPL: REPLConfig{
			Prompt: "binop> ",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (cfg *Config, err error) {
	defer Error.WrapP(&err)

	cfg = DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values nothing can use.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return Error.New("width=%d must be positive", c.Width)
	}

	if c.FixedPoint < 0 || c.FixedPoint >= c.Width {
		return Error.New("fixed_point=%d must be in [0, %d)", c.FixedPoint, c.Width)
	}

	_, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Options returns the value settings for decimal operands.
func (c *Config) Options() []binary.Option {
	return []binary.Option{
		binary.Width(c.Width),
		binary.FixedPoint(c.FixedPoint),
		binary.Signed(c.Signed),
		binary.Prefix(c.Prefix),
	}
}

// Format returns the data file format.
func (c *Config) Format() datfile.Format {
	return datfile.Format{
		Width:      c.Width,
		FixedPoint: c.FixedPoint,
		Signed:     c.Signed,
	}
}
