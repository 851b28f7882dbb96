// Package main is the entry point for the correlation-vector command line
// tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gitlab.com/gitlab-org/labkit/fields"

	cvCmd "gitlab.com/gitlab-org/correlation-vector/cmd/correlation-vector/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
	"gitlab.com/gitlab-org/correlation-vector/internal/executable"
	"gitlab.com/gitlab-org/correlation-vector/internal/logger"
)

var (
	configDir = flag.String("config-dir", "", "The directory the config is in")

	// Version is the current version of correlation-vector
	Version = "(unknown version)" // Set at build time in the Makefile
	// BuildTime signifies the time the binary was build
	BuildTime = "19700101.000000" // Set at build time in the Makefile
)

// loadConfig reads the configuration from an explicit directory, from the
// installation root next to the binary, or falls back to the defaults when
// neither holds a config file.
func loadConfig(configDir string) (*config.Config, error) {
	if configDir != "" {
		return config.NewFromDir(configDir)
	}

	if exe, err := executable.New(executable.CorrelationVector); err == nil {
		if cfg, err := config.NewFromDir(exe.RootDir); err == nil {
			return cfg, nil
		}
	}

	return config.NewDefault(), nil
}

func overrideConfigFromEnvironment(cfg *config.Config) {
	if version := os.Getenv("CV_DEFAULT_VERSION"); version != "" {
		cfg.DefaultVersion = version
	}
	if strict := os.Getenv("CV_STRICT_VALIDATION"); strict != "" {
		cfg.StrictValidation = strict == "1" || strict == "true"
	}
	if logFormat := os.Getenv("CV_LOG_FORMAT"); logFormat != "" {
		cfg.LogFormat = logFormat
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	command.CheckForVersionFlag(os.Args, Version, BuildTime)
	flag.Parse()

	countingOut := &readwriter.CountingWriter{W: os.Stdout}
	readWriter := &readwriter.ReadWriter{
		Out:    countingOut,
		In:     os.Stdin,
		ErrOut: os.Stderr,
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(readWriter.ErrOut, "Failed to read config, exiting: %v\n", err)
		return 1
	}

	overrideConfigFromEnvironment(cfg)
	if err := cfg.IsSane(); err != nil {
		fmt.Fprintf(readWriter.ErrOut, "Configuration error, exiting: %v\n", err)
		return 1
	}

	logOutput, logCloser, err := logger.ConfigureLogger(cfg)
	if err != nil {
		logOutput.ErrorContext(ctx, "failed to log to file, reverting to stderr", slog.String(fields.ErrorMessage, err.Error()))
	} else {
		// nolint
		defer func() {
			if err = logCloser.Close(); err != nil {
				logOutput.ErrorContext(ctx, "failed to close log file", slog.String(fields.ErrorMessage, err.Error()))
			}
		}()
	}
	slog.SetDefault(logOutput)

	cmd, err := cvCmd.New(flag.Args(), cfg, readWriter)
	if err != nil {
		fmt.Fprintf(readWriter.ErrOut, "%v\n", err)
		return 1
	}

	ctx, finished := command.Setup("correlation-vector", cfg)
	defer finished()

	ctxWithLogData, err := cmd.Execute(ctx)
	if err != nil {
		fmt.Fprintf(readWriter.ErrOut, "%v\n", err)
		return 1
	}

	logData := command.LogDataFromContext(ctxWithLogData)
	slog.InfoContext(ctxWithLogData, "command executed successfully",
		slog.String("operation", logData.Operation),
		slog.Int("vectors", logData.Vectors),
		slog.Int64("written_bytes", countingOut.N),
	)

	return 0
}
