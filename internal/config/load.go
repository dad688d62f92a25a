package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load creates a config from defaults, the config file, environment overrides and flags, in that order
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	path := flags.ConfigPath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file, defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(cfg.GetDotEnvPath())

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)
	return cfg, nil
}

// decode overlays file values onto the defaults. YAML is a superset of JSON so both formats are accepted.
func (c *Config) decode(data []byte) error {
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = splitList(v)
		}
	}

	str("STRATEGY", &c.Strategy)
	str("TESTS_DIRECTORY", &c.TestsDirectory)
	str("RESULT_PATH", &c.ResultPath)
	str("LEVEL", &c.DepthLevel)
	str("CODECEPTION_REPORTS_DIR", &c.CodeceptionReportsDir)
	str("DEFAULT_GROUPS_DIR", &c.DefaultGroupsDir)
	list("SUITES_DIRECTORIES", &c.SuitesDirectories)
	list("DEFAULT_STRATEGIES", &c.DefaultStrategies)

	if v, ok := lookup(EnvPrefix + "GROUPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sGROUPS: %w", EnvPrefix, err)
		}
		c.Groups = n
	}
	if v, ok := lookup(EnvPrefix + "USE_DEFAULT_STRATEGIES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sUSE_DEFAULT_STRATEGIES: %w", EnvPrefix, err)
		}
		c.UseDefaultStrategies = b
	}
	return nil
}

func (c *Config) applyFlags(flags Flags) {
	if flags.Strategy != "" {
		c.Strategy = flags.Strategy
	}
	if flags.Level != "" {
		c.DepthLevel = flags.Level
	}
	if flags.Groups > 0 {
		c.Groups = flags.Groups
	}
	if flags.ResultPath != "" {
		c.ResultPath = flags.ResultPath
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
