package vectors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		desc        string
		positionals []string
		input       string
		expected    []string
	}{
		{
			desc:        "positional arguments win",
			positionals: []string{"a.1", "b.2"},
			input:       "ignored.0\n",
			expected:    []string{"a.1", "b.2"},
		},
		{
			desc:     "one vector per input line",
			input:    "PmvzQKgYek6SdkTz.1\nKeLbMqOWLU+gL5dqi3L5YA.0\n",
			expected: []string{"PmvzQKgYek6SdkTz.1", "KeLbMqOWLU+gL5dqi3L5YA.0"},
		},
		{
			desc:     "blank lines and padding are skipped",
			input:    "\n  a.1  \n\n\tb.2\n",
			expected: []string{"a.1", "b.2"},
		},
		{
			desc:     "missing trailing newline",
			input:    "a.1",
			expected: []string{"a.1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			result, err := Resolve(tc.positionals, strings.NewReader(tc.input))

			require.NoError(t, err)
			require.Equal(t, tc.expected, result)
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve(nil, strings.NewReader("\n \n"))

	require.EqualError(t, err, "no vector given on the command line or stdin")
}
