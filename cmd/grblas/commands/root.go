// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the grblas CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/grblas/coo"
)

// Config keys shared by flags, environment (GRBLAS_*) and the config file.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyWorkers   = "workers"
	keyGraph     = "graph"
)

// env is the per-invocation state handed to every subcommand.
type env struct {
	v      *viper.Viper
	logger *slog.Logger
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	e := &env{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:           "grblas",
		Short:         "Graph algorithms over sparse semiring algebra",
		Long:          "grblas runs BFS, shortest paths and triangle counting on coordinate-list graphs (JSON or YAML).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	addGlobalFlags(pf)
	_ = e.v.BindPFlags(pf) // flags are defined above
	e.v.SetEnvPrefix("GRBLAS")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root.AddCommand(
		newBFSCommand(e),
		newMSBFSCommand(e),
		newSSSPCommand(e),
		newMSSPCommand(e),
		newAPSPCommand(e),
		newTrianglesCommand(e),
		newSymmetricCommand(e),
		newGenerateCommand(e),
	)

	return root
}

// addGlobalFlags registers the flags every subcommand inherits.
func addGlobalFlags(pf *pflag.FlagSet) {
	pf.String(keyConfig, "", "config file (yaml)")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	pf.String(keyLogFormat, "text", "log format: text or json")
	pf.Int(keyWorkers, 1, "row-block workers for matrix products (0 = GOMAXPROCS)")
}

// Execute runs the CLI against os.Args and reports errors on stderr.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grblas:", err)
		return err
	}

	return nil
}

// init reads the optional config file and builds the logger.
func (e *env) init(cmd *cobra.Command) error {
	if path := e.v.GetString(keyConfig); path != "" {
		e.v.SetConfigFile(path)
		if err := e.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), e.v.GetString(keyLogLevel), e.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	e.logger = logger

	if e.v.GetInt(keyWorkers) < 0 {
		return fmt.Errorf("--%s must be >= 0, got %d", keyWorkers, e.v.GetInt(keyWorkers))
	}

	return nil
}

// newLogger returns a slog logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--%s: %w", keyLogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--%s: unknown format %q (want text or json)", keyLogFormat, format)
	}
}

// workers returns the configured worker count.
func (e *env) workers() int { return e.v.GetInt(keyWorkers) }

// loadGraph reads the --graph file of cmd.
func (e *env) loadGraph(cmd *cobra.Command) (*coo.Graph, error) {
	path, err := cmd.Flags().GetString(keyGraph)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("--%s is required", keyGraph)
	}
	g, err := coo.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Info("graph loaded", "path", path, "size", g.Size, "edges", g.Edges(), "weighted", g.Weighted())

	return g, nil
}

// addGraphFlag registers the --graph flag on cmd.
func addGraphFlag(cmd *cobra.Command) {
	cmd.Flags().String(keyGraph, "", "graph file (.json, .yaml or .yml)")
}
