package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tsep/internal/domain"
)

var (
	ErrInvalidTestsDirectory  = errors.New("path to tests directory is invalid")
	ErrInvalidResultDirectory = errors.New("path to results directory is invalid")
	ErrUnknownDepthLevel      = errors.New("not available depth level")
	ErrInvalidGroupCount      = errors.New("group count must be at least 1")
	ErrInvalidGroupFilePrefix = errors.New("group file prefix must be a non-empty file name")
)

// Validate checks the preconditions that must hold before any collection work starts.
// Strategy preconditions are checked by the strategy resolver.
func (c *Config) Validate() error {
	if !isDir(c.TestsDirectory) {
		return fmt.Errorf("%w: %q", ErrInvalidTestsDirectory, c.TestsDirectory)
	}
	if !isDir(c.ResultPath) {
		return fmt.Errorf("%w: %q", ErrInvalidResultDirectory, c.ResultPath)
	}
	if _, err := c.GetDepthLevel(); err != nil {
		return err
	}
	if c.Groups < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGroupCount, c.Groups)
	}
	if c.GroupFilePrefix == "" || strings.ContainsAny(c.GroupFilePrefix, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidGroupFilePrefix, c.GroupFilePrefix)
	}
	return nil
}

// GetDepthLevel returns the parsed depth level
func (c *Config) GetDepthLevel() (domain.DepthLevel, error) {
	level, err := domain.ParseDepthLevel(c.DepthLevel)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDepthLevel, c.DepthLevel)
	}
	return level, nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
