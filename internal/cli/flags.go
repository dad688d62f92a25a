package cli

import "tsep/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigPath string
	Verbose    bool
	Strategy   string
	Level      string
	Groups     int
	ResultPath string
	NoProgress bool
	DryRun     bool
	TestCases  bool
	Plain      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigPath: f.ConfigPath,
		Strategy:   f.Strategy,
		Level:      f.Level,
		Groups:     f.Groups,
		ResultPath: f.ResultPath,
		Verbose:    f.Verbose,
		NoProgress: f.NoProgress,
	}
}
