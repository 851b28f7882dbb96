// Package extend implements the "extend" command for deriving vectors from
// received wire values.
package extend

import (
	"context"
	"fmt"
	"log/slog"

	"gitlab.com/gitlab-org/labkit/v2/log"

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

// Execute extends each vector given as an argument or on stdin and prints
// the results in input order.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	values, err := vectors.Resolve(c.Args.SubArgs, c.ReadWriter.In)
	if err != nil {
		return ctx, err
	}

	generator, err := c.Config.Generator()
	if err != nil {
		return ctx, err
	}

	ctx = log.WithFields(ctx, slog.Int("count", len(values)))
	slog.DebugContext(ctx, "extend: deriving vectors")

	for _, value := range values {
		v, err := generator.Extend(value)
		if err != nil {
			return ctx, err
		}

		fmt.Fprintln(c.ReadWriter.Out, v.Value())
	}

	return command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Extend),
		Vectors:   len(values),
	}), nil
}
