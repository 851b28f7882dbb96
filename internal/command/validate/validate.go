// Package validate implements the "validate" command for strict checking of
// wire values.
package validate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"gitlab.com/gitlab-org/labkit/v2/log"

	"gitlab.com/gitlab-org/correlation-vector/correlationvector"
	"gitlab.com/gitlab-org/correlation-vector/internal/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/commandargs"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/shared/vectors"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

type Command struct {
	Config     *config.Config
	Args       *commandargs.Args
	ReadWriter *readwriter.ReadWriter
}

// Execute validates each vector given as an argument or on stdin against
// the strict format rules and prints one verdict per line. A failing
// vector does not stop the batch, but any failure makes the command
// return an error.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	flags := flag.NewFlagSet(string(commandargs.Validate), flag.ContinueOnError)
	flags.SetOutput(c.ReadWriter.ErrOut)
	versionFlag := flags.String("version", "", "validate against this version instead of the inferred one")

	if err := flags.Parse(c.Args.SubArgs); err != nil {
		return ctx, err
	}

	var version correlationvector.Version
	if *versionFlag != "" {
		parsed, err := correlationvector.ParseVersion(*versionFlag)
		if err != nil {
			return ctx, err
		}
		version = parsed
	}

	values, err := vectors.Resolve(flags.Args(), c.ReadWriter.In)
	if err != nil {
		return ctx, err
	}

	ctx = log.WithFields(ctx, slog.Int("count", len(values)))
	slog.DebugContext(ctx, "validate: checking vectors")

	failures := 0
	for _, value := range values {
		against := version
		if against == 0 {
			against = correlationvector.InferVersion(value)
		}

		if err := correlationvector.Validate(value, against); err != nil {
			failures++

			var formatErr *correlationvector.FormatError
			if errors.As(err, &formatErr) {
				fmt.Fprintf(c.ReadWriter.Out, "%s: %s\n", value, formatErr.Reason)
			} else {
				fmt.Fprintf(c.ReadWriter.Out, "%s: %v\n", value, err)
			}
			continue
		}

		fmt.Fprintf(c.ReadWriter.Out, "%s: OK\n", value)
	}

	ctx = command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Validate),
		Vectors:   len(values),
	})

	if failures > 0 {
		return ctx, fmt.Errorf("%d of %d vectors failed validation", failures, len(values))
	}

	return ctx, nil
}
