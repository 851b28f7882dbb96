package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/correlation-vector/internal/command"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/commandargs"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

func setup(subArgs []string, input string) (*Command, *bytes.Buffer) {
	output := &bytes.Buffer{}
	cmd := &Command{
		Config:     config.NewDefault(),
		Args:       &commandargs.Args{CommandType: commandargs.Validate, SubArgs: subArgs},
		ReadWriter: &readwriter.ReadWriter{Out: output, ErrOut: &bytes.Buffer{}, In: strings.NewReader(input)},
	}

	return cmd, output
}

func TestExecute(t *testing.T) {
	cmd, output := setup([]string{"PmvzQKgYek6SdkTz.1", "KeLbMqOWLU+gL5dqi3L5YA.3.4"}, "")

	ctx, err := cmd.Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, "PmvzQKgYek6SdkTz.1: OK\nKeLbMqOWLU+gL5dqi3L5YA.3.4: OK\n", output.String())

	logData := command.LogDataFromContext(ctx)
	require.Equal(t, "validate", logData.Operation)
	require.Equal(t, 2, logData.Vectors)
}

func TestExecuteFailures(t *testing.T) {
	cmd, output := setup([]string{"PmvzQKgYek6SdkTz.1", "short.1", "PmvzQKgYek6SdkTz.x"}, "")

	_, err := cmd.Execute(context.Background())
	require.EqualError(t, err, "2 of 3 vectors failed validation")

	expected := strings.Join([]string{
		"PmvzQKgYek6SdkTz.1: OK",
		"short.1: bad_base_length",
		"PmvzQKgYek6SdkTz.x: bad_extension_value",
		"",
	}, "\n")
	require.Equal(t, expected, output.String())
}

func TestExecuteExplicitVersion(t *testing.T) {
	// A sixteen character base is valid v1, but not v2.
	cmd, output := setup([]string{"-version", "v2", "PmvzQKgYek6SdkTz.1"}, "")

	_, err := cmd.Execute(context.Background())
	require.EqualError(t, err, "1 of 1 vectors failed validation")
	require.Equal(t, "PmvzQKgYek6SdkTz.1: bad_base_length\n", output.String())
}

func TestExecuteBadVersionFlag(t *testing.T) {
	cmd, _ := setup([]string{"-version", "v9", "a.1"}, "")

	_, err := cmd.Execute(context.Background())
	require.EqualError(t, err, `unknown correlation vector version "v9"`)
}

func TestExecuteFromStdin(t *testing.T) {
	cmd, output := setup(nil, "PmvzQKgYek6SdkTz.1\n!\n")

	_, err := cmd.Execute(context.Background())
	require.EqualError(t, err, "1 of 2 vectors failed validation")
	require.Contains(t, output.String(), "!: null_or_oversized\n")
}
