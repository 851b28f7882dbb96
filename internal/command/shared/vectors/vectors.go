// Package vectors resolves the correlation vectors a subcommand operates on,
// either from its positional arguments or from standard input.
package vectors

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Resolve returns the positional arguments when there are any. Otherwise it
// reads the input line by line, skipping blank lines, so vectors can be piped
// between invocations.
func Resolve(positionals []string, in io.Reader) ([]string, error) {
	if len(positionals) > 0 {
		return positionals, nil
	}

	var values []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		value := strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}

		values = append(values, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, errors.New("no vector given on the command line or stdin")
	}

	return values, nil
}
