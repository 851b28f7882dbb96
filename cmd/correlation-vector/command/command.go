// Package command builds the subcommand requested on the command line.
package command

import (
	"fmt"

	"gitlab.com/gitlab-org/correlation-vector/internal/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/commandargs"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/create"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/extend"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/increment"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/inspect"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/spin"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/validate"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

func New(arguments []string, config *config.Config, readWriter *readwriter.ReadWriter) (command.Command, error) {
	args, err := commandargs.Parse(arguments)
	if err != nil {
		return nil, err
	}

	if cmd := Build(args, config, readWriter); cmd != nil {
		return cmd, nil
	}

	return nil, fmt.Errorf("unknown operation %q, expected one of: %s", args.CommandType, commandargs.List())
}

func Build(args *commandargs.Args, config *config.Config, readWriter *readwriter.ReadWriter) command.Command {
	switch args.CommandType {
	case commandargs.Create:
		return &create.Command{Config: config, Args: args, ReadWriter: readWriter}
	case commandargs.Extend:
		return &extend.Command{Config: config, Args: args, ReadWriter: readWriter}
	case commandargs.Spin:
		return &spin.Command{Config: config, Args: args, ReadWriter: readWriter}
	case commandargs.Increment:
		return &increment.Command{Config: config, Args: args, ReadWriter: readWriter}
	case commandargs.Inspect:
		return &inspect.Command{Config: config, Args: args, ReadWriter: readWriter}
	case commandargs.Validate:
		return &validate.Command{Config: config, Args: args, ReadWriter: readWriter}
	}

	return nil
}
