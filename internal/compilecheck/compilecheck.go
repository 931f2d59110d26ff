// Package compilecheck runs the solver's compile test against generated
// source files and extracts compiler diagnostics from its output.
package compilecheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vk/megc/internal/ctxlog"
)

// Result summarizes one compile test run.
type Result struct {
	// ExitStatus is the exit code of the compile command.
	ExitStatus int
	// ErrorCount is the number of compiler error diagnostics found on stderr.
	ErrorCount int
	// Diagnostics holds each error line together with the line that follows
	// it, which usually carries the offending source text.
	Diagnostics []string
}

// Ok reports whether the run compiled cleanly.
func (r *Result) Ok() bool {
	return r.ExitStatus == 0 && r.ErrorCount == 0
}

// Runner invokes an external compile command in a work directory.
type Runner struct {
	command []string
}

// NewRunner creates a runner for the given command line, e.g.
// "code_saturne compile -t".
func NewRunner(command string) (*Runner, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, fmt.Errorf("compile command must not be empty")
	}
	return &Runner{command: argv}, nil
}

// CompileAndLink runs the compile command in dir and returns its outcome.
// A non-zero exit status is reported through the result, not as an error;
// an error means the command could not be run at all.
func (r *Runner) CompileAndLink(ctx context.Context, dir string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Running compile test.", "command", strings.Join(r.command, " "), "dir", dir)

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	res := &Result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run compile command: %w", err)
		}
		res.ExitStatus = exitErr.ExitCode()
	}

	res.Diagnostics = ParseDiagnostics(stderr.String())
	res.ErrorCount = len(res.Diagnostics)

	logger.Debug("Compile test finished.", "exit_status", res.ExitStatus, "errors", res.ErrorCount)
	return res, nil
}

// ParseDiagnostics scans compiler output for error lines. Each diagnostic is
// the line containing "error:" joined with the line that follows it.
func ParseDiagnostics(stderr string) []string {
	lines := strings.Split(stderr, "\n")
	var diags []string
	for i, line := range lines {
		if !strings.Contains(line, "error:") {
			continue
		}
		d := line
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			d += "\n" + lines[i+1]
		}
		diags = append(diags, d)
	}
	return diags
}
