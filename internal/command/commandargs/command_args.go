// Package commandargs parses the command line of the correlation-vector
// executable into an operation and its remaining arguments.
package commandargs

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	Create    CommandType = "create"
	Extend    CommandType = "extend"
	Spin      CommandType = "spin"
	Increment CommandType = "increment"
	Inspect   CommandType = "inspect"
	Validate  CommandType = "validate"
)

var knownTypes = []CommandType{Create, Extend, Spin, Increment, Inspect, Validate}

// Args holds the parsed command line. CommandType is the first positional
// argument, SubArgs everything after it, flags included.
type Args struct {
	Arguments   []string
	CommandType CommandType
	SubArgs     []string
}

// Parse splits the raw arguments into an operation and its sub-arguments.
func Parse(arguments []string) (*Args, error) {
	if len(arguments) == 0 {
		return nil, fmt.Errorf("no operation given, expected one of: %s", List())
	}

	args := &Args{Arguments: arguments, CommandType: CommandType(arguments[0]), SubArgs: arguments[1:]}

	if !args.isKnownType() {
		return nil, fmt.Errorf("unknown operation %q, expected one of: %s", arguments[0], List())
	}

	return args, nil
}

func (a *Args) GetArguments() []string {
	return a.Arguments
}

func (a *Args) isKnownType() bool {
	for _, t := range knownTypes {
		if a.CommandType == t {
			return true
		}
	}

	return false
}

// List returns the known operation names as a comma separated string.
func List() string {
	names := make([]string, 0, len(knownTypes))
	for _, t := range knownTypes {
		names = append(names, string(t))
	}

	return strings.Join(names, ", ")
}
