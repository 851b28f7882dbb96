// Package config loads the correlation-vector configuration from config.yml
// and turns it into generator options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"gitlab.com/gitlab-org/correlation-vector/correlationvector"
)

const configFile = "config.yml"

// SpinConfig selects the parameters for spin derivations. An entirely empty
// block means the library defaults; a block with any field set is taken
// literally, including entropy 0.
type SpinConfig struct {
	Interval    string `yaml:"interval"`
	Periodicity string `yaml:"periodicity"`
	Entropy     int    `yaml:"entropy"`
}

// Config is the process configuration.
type Config struct {
	// RootDir is the directory the config was loaded from. Relative paths
	// in the config resolve against it.
	RootDir string

	// LogFile receives the log stream. Empty means stderr.
	LogFile   string `yaml:"log_file"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`

	// Tracing is a labkit connection string, e.g. "opentracing://jaeger".
	Tracing string `yaml:"tracing"`

	// DefaultVersion is the version freshly minted vectors use.
	DefaultVersion string `yaml:"default_version"`

	// StrictValidation makes derivations reject malformed inbound vectors.
	StrictValidation bool `yaml:"strict_validation"`

	Spin SpinConfig `yaml:"spin"`
}

// NewFromDir reads config.yml from the given directory and applies defaults.
func NewFromDir(dir string) (*Config, error) {
	cfg, err := newFromFile(filepath.Join(dir, configFile))
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// NewDefault returns a config with defaults applied and no file behind it,
// for running without a config directory.
func NewDefault() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// newFromFile reads a Config from the given file path. It doesn't apply any
// defaults.
func newFromFile(path string) (*Config, error) {
	cfg := &Config{RootDir: filepath.Dir(path)}

	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(configBytes, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills the fields that must not stay empty. LogFile is left
// alone: without a file the logger writes to stderr.
func (cfg *Config) ApplyDefaults() {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DefaultVersion == "" {
		cfg.DefaultVersion = correlationvector.DefaultVersion.String()
	}
	if len(cfg.LogFile) > 0 && cfg.LogFile[0] != '/' && cfg.RootDir != "" {
		cfg.LogFile = filepath.Join(cfg.RootDir, cfg.LogFile)
	}
}

// IsSane checks that the config fulfills the minimum requirements to run.
// Any error returned here should be treated as a startup error.
func (cfg *Config) IsSane() error {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}

	if cfg.DefaultVersion != "" {
		if _, err := correlationvector.ParseVersion(cfg.DefaultVersion); err != nil {
			return fmt.Errorf("default_version must be v1 or v2, got %q", cfg.DefaultVersion)
		}
	}

	switch correlationvector.SpinCounterInterval(cfg.Spin.Interval) {
	case "", correlationvector.SpinCounterIntervalCoarse, correlationvector.SpinCounterIntervalFine:
	default:
		return fmt.Errorf("spin.interval must be coarse or fine, got %q", cfg.Spin.Interval)
	}

	switch correlationvector.SpinCounterPeriodicity(cfg.Spin.Periodicity) {
	case "",
		correlationvector.SpinCounterPeriodicityNone,
		correlationvector.SpinCounterPeriodicityShort,
		correlationvector.SpinCounterPeriodicityMedium,
		correlationvector.SpinCounterPeriodicityLong:
	default:
		return fmt.Errorf("spin.periodicity must be none, short, medium or long, got %q", cfg.Spin.Periodicity)
	}

	if cfg.Spin.Entropy < 0 || cfg.Spin.Entropy > 4 {
		return fmt.Errorf("spin.entropy must be between 0 and 4, got %d", cfg.Spin.Entropy)
	}

	return nil
}

// Generator builds the generator the configuration describes.
func (cfg *Config) Generator() (*correlationvector.Generator, error) {
	opts := correlationvector.Options{StrictValidation: cfg.StrictValidation}

	if cfg.DefaultVersion != "" {
		version, err := correlationvector.ParseVersion(cfg.DefaultVersion)
		if err != nil {
			return nil, err
		}
		opts.Version = version
	}

	if cfg.Spin != (SpinConfig{}) {
		opts.Spin = &correlationvector.SpinParameters{
			Interval:    correlationvector.SpinCounterInterval(cfg.Spin.Interval),
			Periodicity: correlationvector.SpinCounterPeriodicity(cfg.Spin.Periodicity),
			Entropy:     correlationvector.SpinEntropy(cfg.Spin.Entropy),
		}
	}

	return correlationvector.NewGenerator(opts), nil
}
