package config

import (
	"os"

	flag "github.com/spf13/pflag"
)

// Config holds all runtime configuration.
type Config struct {
	Cwd     string
	JSON    bool
	NoColor bool
	Color   bool

	HistoryFile string

	// Remaining args after flag parsing (single-command mode)
	Args []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	histFile := home + "/.pathkit_history"
	if env := os.Getenv("PATHKIT_HISTORY"); env != "" {
		histFile = env
	}

	cwd := ""
	if env := os.Getenv("PATHKIT_CWD"); env != "" {
		cwd = env
	}

	return &Config{
		Cwd:         cwd,
		HistoryFile: histFile,
	}
}

// RegisterFlags registers CLI flags on the given flag set.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVarP(&c.Cwd, "cwd", "C", c.Cwd, "Working directory for resolving relative paths")
	fs.BoolVar(&c.JSON, "json", false, "JSON output mode")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&c.Color, "color", false, "Force colors")
}

// WorkingDir returns the configured working directory, falling back to the
// process working directory and then "/".
func (c *Config) WorkingDir() string {
	if c.Cwd != "" {
		return c.Cwd
	}
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return wd
}

// ShouldColor returns true if color output should be enabled.
func (c *Config) ShouldColor() bool {
	if c.NoColor {
		return false
	}
	if c.Color {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}
