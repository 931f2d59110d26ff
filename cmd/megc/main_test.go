package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_GeneratesUnitFromCase(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	caseDir := t.TempDir()
	outDir := t.TempDir()
	caseHCL := `
volume_formula "density" "all_cells" {
  expression = "result = 1.2;"
  required   = ["result"]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(caseDir, "case.hcl"), []byte(caseHCL), 0o644))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-output", outDir, caseDir})

	// --- Assert ---
	require.NoError(t, err)
	generated, err := os.ReadFile(filepath.Join(outDir, "cs_meg_volume_function.c"))
	require.NoError(t, err)
	require.Contains(t, string(generated), "cs_meg_volume_function")
	require.Contains(t, string(generated), "f->val[c_id] = 1.2;")
}

func TestRun_MalformedCaseFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	caseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(caseDir, "broken.hcl"),
		[]byte(`volume_formula "density" {`), 0o644))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{caseDir})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load case definition")
}
