package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// QuirksAuto asks the tool to detect the quirk mode of an input image.
const QuirksAuto = "auto"

// Config holds the settings shared by every subcommand.
type Config struct {
	Quirks       string  `yaml:"quirks"`
	Compression  string  `yaml:"compression"`
	StrictLength bool    `yaml:"strict_length"`
	Logging      Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Quirks:      QuirksAuto,
		Compression: "zstd",
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting can be resolved.
func (c *Config) Validate() error {
	if _, _, err := c.QuirkMode(); err != nil {
		return err
	}

	if _, err := c.CompressionType(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// QuirkMode resolves the quirks setting. auto is true when the mode should
// be detected from the input.
func (c *Config) QuirkMode() (q packing.Quirks, auto bool, err error) {
	if c.Quirks == QuirksAuto {
		return 0, true, nil
	}

	q, err = packing.ParseQuirks(c.Quirks)
	if err != nil {
		return 0, false, fmt.Errorf("invalid quirks %q: %w", c.Quirks, err)
	}

	return q, false, nil
}

// CompressionType resolves the compression setting.
func (c *Config) CompressionType() (format.CompressionType, error) {
	t, ok := format.ParseCompressionType(c.Compression)
	if !ok {
		return 0, fmt.Errorf("invalid compression %q", c.Compression)
	}

	return t, nil
}

// Level resolves the log level setting.
func (c *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}

	return lvl, nil
}
