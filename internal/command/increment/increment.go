// Package increment implements the "increment" command for stepping the
// extension of existing vectors.
package increment

import (
	"context"
	"flag"
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

// Execute applies the requested number of increments to each vector given
// as an argument or on stdin and prints the final values. Parsing is
// lenient so a frozen or capped vector passes through unchanged rather
// than failing the whole batch.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	flags := flag.NewFlagSet(string(commandargs.Increment), flag.ContinueOnError)
	flags.SetOutput(c.ReadWriter.ErrOut)
	countFlag := flags.Int("count", 1, "number of increments to apply")

	if err := flags.Parse(c.Args.SubArgs); err != nil {
		return ctx, err
	}

	if *countFlag < 1 {
		return ctx, fmt.Errorf("count must be positive, got %d", *countFlag)
	}

	values, err := vectors.Resolve(flags.Args(), c.ReadWriter.In)
	if err != nil {
		return ctx, err
	}

	generator, err := c.Config.Generator()
	if err != nil {
		return ctx, err
	}

	ctx = log.WithFields(ctx, slog.Int("count", len(values)), slog.Int("increments", *countFlag))
	slog.DebugContext(ctx, "increment: stepping vectors")

	for _, value := range values {
		v := generator.Parse(value)

		rendered := v.Value()
		for i := 0; i < *countFlag; i++ {
			rendered = v.Increment()
		}

		fmt.Fprintln(c.ReadWriter.Out, rendered)
	}

	return command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Increment),
		Vectors:   len(values),
	}), nil
}
