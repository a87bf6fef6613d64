// SPDX-License-Identifier: MIT
// Package config loads lexigraph settings from defaults, an optional YAML
// file and LEXIGRAPH_* environment variables, in increasing precedence.
//
// Keys are dotted section paths (query.max_hops); the matching environment
// variable upper-cases the path and replaces dots with underscores
// (LEXIGRAPH_QUERY_MAX_HOPS).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lexigraph/loader"
	"github.com/katalvlaran/lexigraph/query"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LEXIGRAPH"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Artifact ArtifactConfig `mapstructure:"artifact"`
	Query    QueryConfig    `mapstructure:"query"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// InputConfig describes the raw thesaurus file.
type InputConfig struct {
	Path               string `mapstructure:"path"`
	Delimiter          string `mapstructure:"delimiter" validate:"required"`
	ContinuationMarker string `mapstructure:"continuation_marker" validate:"required,nefield=Delimiter"`
	SkipLines          int    `mapstructure:"skip_lines" validate:"gte=0"`
}

// ArtifactConfig locates the serialized graph.
type ArtifactConfig struct {
	Base string `mapstructure:"base" validate:"required"`
}

// QueryConfig holds engine limits.
type QueryConfig struct {
	MaxHops       int `mapstructure:"max_hops" validate:"gte=0"`
	MaxIterations int `mapstructure:"max_iterations" validate:"gte=1"`
	EdgeBudget    int `mapstructure:"edge_budget" validate:"gte=0"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig names an optional Prometheus text exposition file.
type MetricsConfig struct {
	Output string `mapstructure:"output"`
}

var defaults = map[string]any{
	"input.path":                "",
	"input.delimiter":           loader.DefaultDelimiter,
	"input.continuation_marker": loader.DefaultContinuationMarker,
	"input.skip_lines":          loader.DefaultSkipLines,
	"artifact.base":             "thesaurus",
	"query.max_hops":            query.DefaultMaxHops,
	"query.max_iterations":      query.DefaultMaxIterations,
	"query.edge_budget":         0,
	"log.level":                 "info",
	"metrics.output":            "",
}

// NewViper returns a viper instance carrying every default and the
// environment binding. Callers may bind flags on it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if not empty) into v, then decodes and validates.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and the log level.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoaderOptions maps the input section onto loader options.
func (c *Config) LoaderOptions() []loader.Option {
	return []loader.Option{
		loader.WithDelimiter(c.Input.Delimiter),
		loader.WithContinuationMarker(c.Input.ContinuationMarker),
		loader.WithSkipLines(c.Input.SkipLines),
	}
}

// QueryOptions maps the query section onto engine options.
func (c *Config) QueryOptions() []query.Option {
	return []query.Option{
		query.WithMaxHops(c.Query.MaxHops),
		query.WithMaxIterations(c.Query.MaxIterations),
		query.WithEdgeBudget(c.Query.EdgeBudget),
	}
}

// LogLevel returns the parsed log level; Validate guarantees it parses.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
