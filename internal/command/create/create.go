// Package create implements the "create" command for minting fresh
// correlation vectors.
package create

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gitlab.com/gitlab-org/labkit/v2/log"

	"gitlab.com/gitlab-org/correlation-vector/correlationvector"
	"gitlab.com/gitlab-org/correlation-vector/internal/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/commandargs"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

type Command struct {
	Config     *config.Config
	Args       *commandargs.Args
	ReadWriter *readwriter.ReadWriter
}

// Execute mints one or more fresh vectors and prints them to stdout, one
// per line.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	flags := flag.NewFlagSet(string(commandargs.Create), flag.ContinueOnError)
	flags.SetOutput(c.ReadWriter.ErrOut)
	versionFlag := flags.String("version", "", "vector version to mint, v1 or v2 (default from configuration)")
	countFlag := flags.Int("count", 1, "number of vectors to mint")
	uuidFlag := flags.String("uuid", "", "derive the base from this UUID instead of fresh entropy (implies v2)")

	if err := flags.Parse(c.Args.SubArgs); err != nil {
		return ctx, err
	}

	generator, err := c.Config.Generator()
	if err != nil {
		return ctx, err
	}

	vectors, err := c.mint(generator, *versionFlag, *countFlag, *uuidFlag)
	if err != nil {
		return ctx, err
	}

	for _, v := range vectors {
		fmt.Fprintln(c.ReadWriter.Out, v.Value())
	}

	ctx = log.WithFields(ctx, slog.Int("count", len(vectors)))
	slog.DebugContext(ctx, "create: minted fresh vectors")

	return command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Create),
		Vectors:   len(vectors),
	}), nil
}

func (c *Command) mint(generator *correlationvector.Generator, versionName string, count int, uuidValue string) ([]*correlationvector.Vector, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	if uuidValue != "" {
		if count != 1 {
			return nil, fmt.Errorf("cannot mint %d vectors from one UUID", count)
		}

		id, err := uuid.Parse(uuidValue)
		if err != nil {
			return nil, fmt.Errorf("parsing UUID: %w", err)
		}

		return []*correlationvector.Vector{generator.NewFromUUID(id)}, nil
	}

	fresh := generator.New
	if versionName != "" {
		version, err := correlationvector.ParseVersion(versionName)
		if err != nil {
			return nil, err
		}

		fresh = func() *correlationvector.Vector { return generator.NewWithVersion(version) }
	}

	vectors := make([]*correlationvector.Vector, 0, count)
	for i := 0; i < count; i++ {
		vectors = append(vectors, fresh())
	}

	return vectors, nil
}
