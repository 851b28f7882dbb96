package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

// MustClose calls Close() on the Closer and fails the test in case it
// returns an error.
func MustClose(tb testing.TB, closer io.Closer) {
	require.NoError(tb, closer.Close())
}

func createTempFile(t *testing.T) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "logtest-")
	require.NoError(t, err)
	tmpFile.Close()

	return tmpFile.Name()
}

func TestConfigureLoggerJSONFile(t *testing.T) {
	tmpFile := createTempFile(t)
	cfg := config.Config{
		LogFile:   tmpFile,
		LogFormat: "json",
		LogLevel:  "debug",
	}

	log, closer, err := ConfigureLogger(&cfg)
	require.NoError(t, err)

	log.Info("this is a test")
	log.Debug("spin derived", slog.String("vector", "abc.1"))
	MustClose(t, closer)

	data, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	dataStr := string(data)
	require.Contains(t, dataStr, `"msg":"this is a test"`)
	require.Contains(t, dataStr, `"msg":"spin derived"`)
	require.Contains(t, dataStr, `"vector":"abc.1"`)
}

func TestConfigureLoggerLevelFilter(t *testing.T) {
	tmpFile := createTempFile(t)
	cfg := config.Config{
		LogFile:   tmpFile,
		LogFormat: "text",
		LogLevel:  "error",
	}

	log, closer, err := ConfigureLogger(&cfg)
	require.NoError(t, err)

	log.Info("too quiet to appear")
	log.Error("loud enough to appear")
	MustClose(t, closer)

	data, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "too quiet to appear")
	assert.Contains(t, string(data), "loud enough to appear")
}

func TestConfigureLoggerFileFailure(t *testing.T) {
	cfg := config.Config{
		LogFile: filepath.Join(t.TempDir(), "no-such-dir", "cv.log"),
	}

	log, closer, err := ConfigureLogger(&cfg)

	require.Error(t, err)
	// Startup still gets a usable stderr logger and a closer safe to call.
	require.NotNil(t, log)
	MustClose(t, closer)
}

func TestLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected slog.Level
	}{
		{name: "debug", expected: slog.LevelDebug},
		{name: "info", expected: slog.LevelInfo},
		{name: "warn", expected: slog.LevelWarn},
		{name: "error", expected: slog.LevelError},
		{name: "", expected: slog.LevelInfo},
		{name: "verbose", expected: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, level(tc.name))
		})
	}
}
