package config

import (
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Separating strategy and fallback chain
	Strategy             string   `yaml:"strategy"`
	UseDefaultStrategies bool     `yaml:"use-default-strategies"`
	DefaultStrategies    []string `yaml:"default-strategies"`

	// Paths
	TestsDirectory        string   `yaml:"tests-directory"`
	ResultPath            string   `yaml:"result-path"`
	CodeceptionReportsDir string   `yaml:"codeception-reports-dir"`
	SuitesDirectories     []string `yaml:"suites-directories"`
	DefaultGroupsDir      string   `yaml:"default-groups-dir"`

	// Distribution settings
	DepthLevel string `yaml:"level"`
	Groups     int    `yaml:"groups"`

	// Collection settings
	FilePattern          string `yaml:"file-pattern"`
	MethodWeightMillis   int64  `yaml:"method-weight-millis"`
	SkipMalformedReports bool   `yaml:"skip-malformed-reports"`
	Workers              int    `yaml:"workers"`

	// Output settings
	GroupFilePrefix string `yaml:"group-file-prefix"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigPath string
	Strategy   string
	Level      string
	Groups     int
	ResultPath string
	Verbose    bool
	NoProgress bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Strategy:             DefaultStrategy,
		UseDefaultStrategies: false,
		TestsDirectory:       DefaultTestsDirectory,
		ResultPath:           DefaultResultPath,
		DepthLevel:           DefaultDepthLevel,
		Groups:               DefaultGroups,
		FilePattern:          DefaultFilePattern,
		MethodWeightMillis:   DefaultMethodWeightMillis,
		Workers:              DefaultWorkers,
		GroupFilePrefix:      DefaultGroupFilePrefix,
	}
	cfg.DefaultStrategies = make([]string, len(DefaultStrategies))
	copy(cfg.DefaultStrategies, DefaultStrategies)
	return cfg
}

// GetTestsDirectoryPrefixes returns the prefixes stripped from test file paths to make them relative.
// The configured value comes first, followed by its absolute form when that differs.
func (c *Config) GetTestsDirectoryPrefixes() []string {
	if c.TestsDirectory == "" {
		return nil
	}
	prefixes := []string{withTrailingSlash(filepath.ToSlash(filepath.Clean(c.TestsDirectory)))}
	if abs, err := filepath.Abs(c.TestsDirectory); err == nil {
		abs = withTrailingSlash(filepath.ToSlash(abs))
		if abs != prefixes[0] {
			prefixes = append(prefixes, abs)
		}
	}
	return prefixes
}

// GetWorkers returns the report parsing concurrency, at least 1
func (c *Config) GetWorkers() int {
	if c.Workers <= 0 {
		return 1
	}
	return c.Workers
}

// GetDotEnvPath returns the .env file read alongside the config file
func (c *Config) GetDotEnvPath() string {
	if c.Flags.ConfigPath == "" {
		return ".env"
	}
	return filepath.Join(filepath.Dir(c.Flags.ConfigPath), ".env")
}

func withTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
