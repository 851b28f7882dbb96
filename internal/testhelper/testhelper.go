// Package testhelper prepares test environments and fixture directories.
package testhelper

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/require"
)

// TempEnv sets the given environment variables for the duration of the test.
func TempEnv(t *testing.T, env map[string]string) {
	for key, value := range env {
		t.Setenv(key, value)
	}
}

// PrepareTestRootDir copies the testdata/testroot fixtures into a fresh
// temporary directory, makes it the working directory for the duration of
// the test and returns its path.
func PrepareTestRootDir(t *testing.T) string {
	t.Helper()

	testRoot := t.TempDir()
	require.NoError(t, copyTestData(testRoot))

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, os.Chdir(oldWd)) })

	require.NoError(t, os.Chdir(testRoot))

	return testRoot
}

func copyTestData(testRoot string) error {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("could not get caller info")
	}

	testdata := path.Join(path.Dir(currentFile), "testdata", "testroot")

	return copy.Copy(testdata, testRoot)
}
