// Package logger builds the process slog logger from the configuration.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConfigureLogger builds a logger according to cfg: a text or json handler
// at the configured level, writing to cfg.LogFile, or to stderr when no
// file is set. When the log file cannot be opened, a stderr logger is
// returned together with the error.
func ConfigureLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return build(os.Stderr, cfg), nopCloser{}, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return build(os.Stderr, cfg), nopCloser{}, err
	}

	return build(file, cfg), file, nil
}

func build(out io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(cfg.LogLevel)}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// level maps a configured level name onto a slog level. Unknown names mean
// info.
func level(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
