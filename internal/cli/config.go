package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // the graph was read but routes could not be computed
	ExitUsage   = 2 // bad flags, bad arguments or an unreadable graph file
)

// ExitError carries the exit code a failure should produce.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the code for err: ExitOK for nil, the carried code for an
// ExitError and ExitUsage for anything else (cobra's own flag errors).
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUsage
}

// Config is the validated set of options for one invocation.
type Config struct {
	GraphPath   string
	Format      graphio.Format // empty means detect from the extension
	Undirected  bool
	Source      string
	Destination string // empty means report every node
	MaxDistance float64
	LogLevel    string
	LogFormat   string
}

// NewConfig normalises and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Source == "" {
		return nil, errors.New("source node must not be empty")
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("invalid max-distance %v: must be non-negative", cfg.MaxDistance)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// engineOptions translates the config into dijkstra options.
func (c *Config) engineOptions() []dijkstra.Option {
	if math.IsInf(c.MaxDistance, 1) {
		return nil
	}

	return []dijkstra.Option{dijkstra.WithMaxDistance(c.MaxDistance)}
}

// loadOptions translates the config into graphio options.
func (c *Config) loadOptions() []graphio.Option {
	var opts []graphio.Option
	if c.Format != "" {
		opts = append(opts, graphio.WithFormat(c.Format))
	}
	if c.Undirected {
		opts = append(opts, graphio.WithUndirected())
	}

	return opts
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
}

// newLogger builds the slog logger described by format and level.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
}
