package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/correlation-vector/internal/command/create"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/extend"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/increment"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/inspect"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/readwriter"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/spin"
	"gitlab.com/gitlab-org/correlation-vector/internal/command/validate"
	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

var (
	basicConfig = &config.Config{DefaultVersion: "v1"}
)

func TestNew(t *testing.T) {
	testCases := []struct {
		desc         string
		arguments    []string
		expectedType interface{}
	}{
		{
			desc:         "it returns a Create command",
			arguments:    []string{"create"},
			expectedType: &create.Command{},
		},
		{
			desc:         "it returns an Extend command",
			arguments:    []string{"extend", "a.1"},
			expectedType: &extend.Command{},
		},
		{
			desc:         "it returns a Spin command",
			arguments:    []string{"spin", "a.1"},
			expectedType: &spin.Command{},
		},
		{
			desc:         "it returns an Increment command",
			arguments:    []string{"increment", "a.1"},
			expectedType: &increment.Command{},
		},
		{
			desc:         "it returns an Inspect command",
			arguments:    []string{"inspect", "a.1"},
			expectedType: &inspect.Command{},
		},
		{
			desc:         "it returns a Validate command",
			arguments:    []string{"validate", "a.1"},
			expectedType: &validate.Command{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			command, err := New(tc.arguments, basicConfig, nil)

			require.NoError(t, err)
			require.IsType(t, tc.expectedType, command)
		})
	}
}

func TestFailingNew(t *testing.T) {
	testCases := []struct {
		desc          string
		arguments     []string
		expectedError string
	}{
		{
			desc:          "it returns an error when no arguments are given",
			arguments:     []string{},
			expectedError: "no operation given, expected one of: create, extend, spin, increment, inspect, validate",
		},
		{
			desc:          "it returns an error for an unknown operation",
			arguments:     []string{"discover"},
			expectedError: `unknown operation "discover", expected one of: create, extend, spin, increment, inspect, validate`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			command, err := New(tc.arguments, basicConfig, &readwriter.ReadWriter{})

			require.Nil(t, command)
			require.EqualError(t, err, tc.expectedError)
		})
	}
}
