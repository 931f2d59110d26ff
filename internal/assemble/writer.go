package assemble

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/megc/internal/ctxlog"
)

// WriteStatus reports the outcome of persisting one generated unit.
type WriteStatus int

const (
	// StatusSkipped means no formulas were registered, so nothing was written.
	StatusSkipped WriteStatus = 0
	// StatusWritten means the unit was written successfully.
	StatusWritten WriteStatus = 1
	// StatusFailed means the write failed; generation of the other unit
	// still proceeds.
	StatusFailed WriteStatus = -1
)

// WriteUnit persists one generated unit under dir. Any previously generated
// file at that path is removed first, even when nothing new is written, so a
// stale unit never survives a case edit that removed its formulas.
func WriteUnit(ctx context.Context, dir, name, code string) WriteStatus {
	logger := ctxlog.FromContext(ctx)
	path := filepath.Join(dir, name)

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to remove previous generated unit.", "path", path, "error", err)
	}

	if code == "" {
		logger.Debug("No formulas registered for unit, nothing written.", "unit", name)
		return StatusSkipped
	}

	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		logger.Error("Failed to write generated unit.", "path", path, "error", err)
		return StatusFailed
	}
	logger.Info("Generated unit written.", "path", path, "bytes", len(code))
	return StatusWritten
}
