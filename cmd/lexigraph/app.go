package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lexigraph/artifact"
	"github.com/katalvlaran/lexigraph/config"
	"github.com/katalvlaran/lexigraph/metrics"
	"github.com/katalvlaran/lexigraph/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	format     string

	cfg      *config.Config
	logger   *log.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

// setup loads configuration and builds the logger and metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.format {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", a.format)
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Level:           cfg.LogLevel(),
		Prefix:          appName,
	})

	a.registry = prometheus.NewRegistry()
	a.recorder, err = metrics.NewRecorder(a.registry)
	return err
}

// withFinish runs run and then finish, so the metrics file is written on
// the error path too; cobra skips post-run hooks once RunE fails.
func (a *app) withFinish(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, a.finish())
	}
}

// finish dumps the metrics file when one is configured.
func (a *app) finish() error {
	if a.cfg == nil || a.cfg.Metrics.Output == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.Output, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", "path", a.cfg.Metrics.Output)
	return nil
}

// engine loads the configured artifact and wraps it in a query engine.
func (a *app) engine() (*query.Engine, error) {
	idx, g, err := artifact.Load(a.cfg.Artifact.Base, artifact.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.recorder.SetGraph(idx.Len(), g.EdgeCount())

	opts := append(a.cfg.QueryOptions(),
		query.WithObserver(a.recorder),
		query.WithLogger(a.logger),
	)
	return query.New(idx, g, opts...)
}

// render writes v as YAML or JSON, or calls text for the text format.
func (a *app) render(w io.Writer, v any, text func(io.Writer)) error {
	switch a.format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		text(w)
		return nil
	}
}

// joinPath renders a term path as "a → b → c".
func joinPath(terms []string) string {
	return strings.Join(terms, " → ")
}

// bindFlag lets flag f override config key when it is set explicitly.
func bindFlag(a *app, f *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind --%s: %v", f.Name, err))
	}
}
