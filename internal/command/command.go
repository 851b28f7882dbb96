// Package command provides the dispatch surface shared by all
// correlation-vector subcommands.
package command

import (
	"context"
	"fmt"
	"os"
	"path"

	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/tracing"

	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

// Command is implemented by every subcommand. Execute returns the context it
// ran with, enriched with LogData so the caller can log a completion summary.
type Command interface {
	Execute(ctx context.Context) (context.Context, error)
}

// LogData carries the fields each subcommand contributes to the final
// completion log line.
type LogData struct {
	Operation string
	Vectors   int
}

type logDataKey struct{}

// ContextWithLogData attaches log data to the context.
func ContextWithLogData(ctx context.Context, logData LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// LogDataFromContext returns the log data stored in the context, if any.
func LogDataFromContext(ctx context.Context) LogData {
	logData, ok := ctx.Value(logDataKey{}).(LogData)
	if !ok {
		return LogData{}
	}

	return logData
}

// CheckForVersionFlag checks if the program is asked to print its version,
// prints it and exits. Must be called before any flag parsing, since the
// subcommands have flags of their own.
func CheckForVersionFlag(osArgs []string, version, buildTime string) {
	if len(osArgs) == 2 && osArgs[1] == "-version" {
		fmt.Printf("%s %s-%s\n", path.Base(osArgs[0]), version, buildTime)
		os.Exit(0)
	}
}

// Setup initializes tracing from the configuration file and generates a
// background context from which all other contexts in the process should
// derive from, as it has a service name and initial correlation ID set.
func Setup(serviceName string, config *config.Config) (context.Context, func()) {
	closer := tracing.Initialize(
		tracing.WithServiceName(serviceName),
		tracing.WithConnectionString(config.Tracing),
	)

	ctx, finished := tracing.ExtractFromEnv(context.Background())
	ctx = correlation.ContextWithClientName(ctx, serviceName)

	correlationID := correlation.ExtractFromContext(ctx)
	if correlationID == "" {
		correlationID := correlation.SafeRandomID()
		ctx = correlation.ContextWithCorrelation(ctx, correlationID)
	}

	return ctx, func() {
		finished()
		closer.Close()
	}
}
