package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/megc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("megc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
megc - Generates solver source units from user-defined case formulas.

Usage:
  megc [options] [CASE_PATH]

Arguments:
  CASE_PATH
    Path to a single .hcl case file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	caseFlag := flagSet.String("case", "", "Path to the case file or directory.")
	outputFlag := flagSet.String("output", ".", "Directory the generated units are written to.")
	notebookFlag := flagSet.String("notebook", "", "Path to a standalone YAML notebook file.")
	packageFlag := flagSet.String("package", "code_saturne", "Host solver package. Options: 'code_saturne' or 'neptune_cfd'.")
	checkFlag := flagSet.Bool("check", false, "Run the solver's compile test after generation.")
	checkCommandFlag := flagSet.String("check-command", app.DefaultCheckCommand, "Command line used for the compile test.")
	lintFlag := flagSet.Bool("lint", false, "Pre-check formulas and warn about suspicious names before generation.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *caseFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		CasePath:     path,
		OutputDir:    *outputFlag,
		NotebookPath: *notebookFlag,
		Package:      *packageFlag,
		Check:        *checkFlag,
		CheckCommand: *checkCommandFlag,
		Lint:         *lintFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
