// Package executable resolves the running binary's name and installation
// root, which is where the configuration file lives by default.
package executable

import (
	"os"
	"path/filepath"
)

const (
	BinDir            = "bin"
	CorrelationVector = "correlation-vector"
)

type Executable struct {
	Name    string
	RootDir string
}

var (
	// osExecutable is overridden in tests
	osExecutable = os.Executable
)

func New(name string) (*Executable, error) {
	path, err := osExecutable()
	if err != nil {
		return nil, err
	}

	rootDir, err := findRootDir(path)
	if err != nil {
		return nil, err
	}

	executable := &Executable{
		Name:    name,
		RootDir: rootDir,
	}

	return executable, nil
}

func findRootDir(path string) (string, error) {
	// Start: /opt/.../correlation-vector/bin/correlation-vector
	// Ends:  /opt/.../correlation-vector
	rootDir := filepath.Dir(filepath.Dir(path))
	pathFromEnv := os.Getenv("CORRELATION_VECTOR_DIR")

	if pathFromEnv != "" {
		if _, err := os.Stat(pathFromEnv); os.IsNotExist(err) {
			return "", err
		}

		rootDir = pathFromEnv
	}

	return rootDir, nil
}
