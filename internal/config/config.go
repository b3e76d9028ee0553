// SPDX-License-Identifier: MIT
// Package: magicsquare/internal/config
//
// config.go: configuration for the magicsquare binary.
//
// Sources, later overriding earlier:
//   • built-in defaults (SetDefaults)
//   • optional YAML file (--config)
//   • environment, prefix MAGICSQUARE_, dots become underscores
//     (MAGICSQUARE_BENCH_REPEATS=50)
//   • command-line flags bound by the caller with BindPFlag
//
// The engine never reads configuration; only the consumers do.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsquare/render"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "MAGICSQUARE"

// Viper keys.
const (
	KeyLogLevel       = "log_level"
	KeyFormat         = "format"
	KeyHeatmapEnabled = "heatmap.enabled"
	KeyHeatmapOverlay = "heatmap.overlay_limit"
	KeyHeatmapColor   = "heatmap.color"
	KeyBenchSizes     = "bench.sizes"
	KeyBenchRepeats   = "bench.repeats"
)

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	LogLevel string        `mapstructure:"log_level" yaml:"log_level"`
	Format   string        `mapstructure:"format" yaml:"format"`
	Heatmap  HeatmapConfig `mapstructure:"heatmap" yaml:"heatmap"`
	Bench    BenchConfig   `mapstructure:"bench" yaml:"bench"`
}

// HeatmapConfig controls the terminal heatmap printed after each square.
type HeatmapConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	OverlayLimit int  `mapstructure:"overlay_limit" yaml:"overlay_limit"`
	Color        bool `mapstructure:"color" yaml:"color"`
}

// BenchConfig controls the bench command.
type BenchConfig struct {
	Sizes   []int `mapstructure:"sizes" yaml:"sizes,flow"`
	Repeats int   `mapstructure:"repeats" yaml:"repeats"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   string(render.FormatText),
		Heatmap: HeatmapConfig{
			Enabled:      false,
			OverlayLimit: render.DefaultOverlayLimit,
			Color:        true,
		},
		Bench: BenchConfig{
			Sizes:   []int{3, 4, 6, 9, 16, 18, 51, 100, 102},
			Repeats: 100,
		},
	}
}

// SetDefaults registers every default on v so that environment variables
// are picked up for all keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyHeatmapEnabled, d.Heatmap.Enabled)
	v.SetDefault(KeyHeatmapOverlay, d.Heatmap.OverlayLimit)
	v.SetDefault(KeyHeatmapColor, d.Heatmap.Color)
	v.SetDefault(KeyBenchSizes, d.Bench.Sizes)
	v.SetDefault(KeyBenchRepeats, d.Bench.Repeats)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional YAML file at path into v, unmarshals and
// validates the result. An empty path skips the file; a path that cannot
// be read is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}
	if c.Heatmap.OverlayLimit < -1 {
		return fmt.Errorf("%w: heatmap.overlay_limit must be ≥ -1, got %d", ErrInvalidConfig, c.Heatmap.OverlayLimit)
	}
	if c.Bench.Repeats < 1 {
		return fmt.Errorf("%w: bench.repeats must be ≥ 1, got %d", ErrInvalidConfig, c.Bench.Repeats)
	}
	for _, n := range c.Bench.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: bench.sizes must be ≥ 1, got %d", ErrInvalidConfig, n)
		}
	}

	return nil
}

// HeatmapOptions converts the heatmap section for render.Heatmap.
func (c *Config) HeatmapOptions() render.HeatmapOptions {
	return render.HeatmapOptions{
		OverlayLimit: c.Heatmap.OverlayLimit,
		Color:        c.Heatmap.Color,
	}
}

// WriteDefault writes the built-in configuration to path as YAML.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}
