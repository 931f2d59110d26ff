package assemble

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteUnit_WritesCode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()

	// --- Act ---
	status := WriteUnit(context.Background(), dir, VolumeFileName, "void f(void) {}\n")

	// --- Assert ---
	require.Equal(t, StatusWritten, status)
	data, err := os.ReadFile(filepath.Join(dir, VolumeFileName))
	require.NoError(t, err)
	require.Equal(t, "void f(void) {}\n", string(data))
}

func TestWriteUnit_EmptyCodeSkipsAndRemovesStale(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, BoundaryFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	// --- Act ---
	status := WriteUnit(context.Background(), dir, BoundaryFileName, "")

	// --- Assert ---
	require.Equal(t, StatusSkipped, status)
	require.NoFileExists(t, path, "a previous unit must not survive an empty generation")
}

func TestWriteUnit_UnwritableDirFails(t *testing.T) {
	t.Parallel()

	status := WriteUnit(context.Background(),
		filepath.Join(t.TempDir(), "does", "not", "exist"), VolumeFileName, "x")

	require.Equal(t, StatusFailed, status)
}
