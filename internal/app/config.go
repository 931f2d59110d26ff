package app

import (
	"errors"

	"github.com/vk/megc/internal/variant"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CasePath     string // case definition file or directory
	OutputDir    string // where generated units are written
	NotebookPath string // optional standalone notebook file
	Package      string // host solver package name

	Check        bool   // run the compile test after generation
	CheckCommand string // command line of the compile test
	Lint         bool   // pre-check formulas before generation

	LogFormat string
	LogLevel  string
}

// DefaultCheckCommand is the solver's own compile test invocation.
const DefaultCheckCommand = "code_saturne compile -t"

// NewConfig validates a configuration and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CasePath == "" {
		return nil, errors.New("CasePath is a required configuration field and cannot be empty")
	}
	if _, err := variant.Parse(cfg.Package); err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.CheckCommand == "" {
		cfg.CheckCommand = DefaultCheckCommand
	}
	return &cfg, nil
}
