// Package spin implements the "spin" command for deriving time and entropy
// stamped vectors.
package spin

import (
	"context"
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

// Execute spins each vector given as an argument or on stdin and prints the
// results in input order. Flags override the configured spin parameters for
// this invocation only.
func (c *Command) Execute(ctx context.Context) (context.Context, error) {
	flags := flag.NewFlagSet(string(commandargs.Spin), flag.ContinueOnError)
	flags.SetOutput(c.ReadWriter.ErrOut)
	intervalFlag := flags.String("interval", "", "tick interval, coarse or fine (default from configuration)")
	periodicityFlag := flags.String("periodicity", "", "counter width, none, short, medium or long (default from configuration)")
	entropyFlag := flags.Int("entropy", -1, "entropy bytes, 0 to 4 (default from configuration)")

	if err := flags.Parse(c.Args.SubArgs); err != nil {
		return ctx, err
	}

	values, err := vectors.Resolve(flags.Args(), c.ReadWriter.In)
	if err != nil {
		return ctx, err
	}

	cfg := *c.Config
	cfg.Spin = c.spinConfig(*intervalFlag, *periodicityFlag, *entropyFlag)
	if err := cfg.IsSane(); err != nil {
		return ctx, err
	}

	generator, err := cfg.Generator()
	if err != nil {
		return ctx, err
	}

	ctx = log.WithFields(ctx,
		slog.Int("count", len(values)),
		slog.String("interval", cfg.Spin.Interval),
		slog.String("periodicity", cfg.Spin.Periodicity),
		slog.Int("entropy", cfg.Spin.Entropy),
	)
	slog.DebugContext(ctx, "spin: deriving vectors")

	for _, value := range values {
		v, err := generator.Spin(value)
		if err != nil {
			return ctx, err
		}

		fmt.Fprintln(c.ReadWriter.Out, v.Value())
	}

	return command.ContextWithLogData(ctx, command.LogData{
		Operation: string(commandargs.Spin),
		Vectors:   len(values),
	}), nil
}

// spinConfig layers the flag overrides over the effective spin parameters,
// which are the configured block when one is set and the library defaults
// otherwise.
func (c *Command) spinConfig(interval, periodicity string, entropy int) config.SpinConfig {
	spin := c.Config.Spin
	if spin == (config.SpinConfig{}) {
		defaults := correlationvector.DefaultSpinParameters()
		spin = config.SpinConfig{
			Interval:    string(defaults.Interval),
			Periodicity: string(defaults.Periodicity),
			Entropy:     int(defaults.Entropy),
		}
	}

	if interval != "" {
		spin.Interval = interval
	}
	if periodicity != "" {
		spin.Periodicity = periodicity
	}
	if entropy >= 0 {
		spin.Entropy = entropy
	}

	return spin
}
