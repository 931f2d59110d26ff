package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/megc/internal/compilecheck"
	"github.com/vk/megc/internal/ctxlog"
	"github.com/vk/megc/internal/fsutil"
)

// runCompileCheck copies the freshly written units into a scratch directory
// and runs the solver's compile test there, so a failed run never leaves
// build artifacts next to the generated sources.
func (a *App) runCompileCheck(ctx context.Context, written []string) error {
	logger := ctxlog.FromContext(ctx)

	runner, err := compilecheck.NewRunner(a.cfg.CheckCommand)
	if err != nil {
		return err
	}

	tmp, err := os.MkdirTemp("", "meg-check-")
	if err != nil {
		return fmt.Errorf("failed to create compile test directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	for _, name := range written {
		if err := fsutil.CopyFile(filepath.Join(a.cfg.OutputDir, name), tmp, 0644); err != nil {
			return err
		}
	}

	res, err := runner.CompileAndLink(ctx, tmp)
	if err != nil {
		return err
	}
	if !res.Ok() {
		for _, d := range res.Diagnostics {
			logger.Error("Compile test diagnostic.", "detail", d)
		}
		return fmt.Errorf("compile test failed: exit status %d, %d error(s)",
			res.ExitStatus, res.ErrorCount)
	}

	logger.Info("Compile test passed.", "files", len(written))
	return nil
}
