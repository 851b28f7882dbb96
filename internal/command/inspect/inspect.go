// Package inspect implements the "inspect" command for breaking a wire
// value into its parsed fields.
package inspect

import (
	"context"
	"encoding/json"
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

type report struct {
	Value     string `json:"value"`
	Base      string `json:"base"`
	Extension uint32 `json:"extension"`
	Version   string `json:"version"`
	Immutable bool   `json:"immutable"`
	Valid     bool   `json:"valid"`
}

// Execute prints the fields of the lenient parse of each input, plus
// whether the input passes strict validation. An input the parser cannot
// preserve shows the fresh fallback vector it degrades to.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	flags := flag.NewFlagSet(string(commandargs.Inspect), flag.ContinueOnError)
	flags.SetOutput(c.ReadWriter.ErrOut)
	jsonFlag := flags.Bool("json", false, "print one JSON object per vector")

	if err := flags.Parse(c.Args.SubArgs); err != nil {
		return ctx, err
	}

	values, err := vectors.Resolve(flags.Args(), c.ReadWriter.In)
	if err != nil {
		return ctx, err
	}

	generator, err := c.Config.Generator()
	if err != nil {
		return ctx, err
	}

	ctx = log.WithFields(ctx, slog.Int("count", len(values)))
	slog.DebugContext(ctx, "inspect: parsing vectors")

	for i, value := range values {
		r := c.buildReport(generator, value)

		if *jsonFlag {
			if err := json.NewEncoder(c.ReadWriter.Out).Encode(r); err != nil {
				return ctx, err
			}
			continue
		}

		if i > 0 {
			fmt.Fprintln(c.ReadWriter.Out)
		}
		c.printReport(r)
	}

	return command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Inspect),
		Vectors:   len(values),
	}), nil
}

func (c *Command) buildReport(generator *correlationvector.Generator, value string) report {
	v := generator.Parse(value)

	return report{
		Value:     v.Value(),
		Base:      v.Base(),
		Extension: v.Extension(),
		Version:   v.Version().String(),
		Immutable: v.Immutable(),
		Valid:     correlationvector.Validate(value, correlationvector.InferVersion(value)) == nil,
	}
}

func (c *Command) printReport(r report) {
	fmt.Fprint(c.ReadWriter.Out, "Value:     "+r.Value+"\n")
	fmt.Fprint(c.ReadWriter.Out, "Base:      "+r.Base+"\n")
	fmt.Fprintf(c.ReadWriter.Out, "Extension: %d\n", r.Extension)
	fmt.Fprint(c.ReadWriter.Out, "Version:   "+r.Version+"\n")
	fmt.Fprintf(c.ReadWriter.Out, "Immutable: %t\n", r.Immutable)
	fmt.Fprintf(c.ReadWriter.Out, "Valid:     %t\n", r.Valid)
}
