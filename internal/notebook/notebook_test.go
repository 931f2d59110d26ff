package notebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	book := New()
	book.Add("p_outlet", cty.NumberFloatVal(101325))

	got, err := book.Lookup("p_outlet")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.NumberFloatVal(101325)))

	_, err = book.Lookup("t_inlet")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdd_KeepsInsertionOrderOnUpdate(t *testing.T) {
	t.Parallel()

	book := New()
	book.Add("a", cty.NumberFloatVal(1))
	book.Add("b", cty.NumberFloatVal(2))
	book.Add("a", cty.NumberFloatVal(3))

	require.Equal(t, []string{"a", "b"}, book.Names())
	got, err := book.Lookup("a")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.NumberFloatVal(3)))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	contents := `
parameters:
  - name: p_outlet
    value: 101325.0
  - name: t_ref
    value: 293.15
`
	path := filepath.Join(t.TempDir(), "notebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	// --- Act ---
	book, err := LoadFile(path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"p_outlet", "t_ref"}, book.Names())
	require.True(t, book.Has("t_ref"))
}

func TestLoadFile_RejectsNamelessParameter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameters:\n  - value: 1.0\n"), 0600))

	_, err := LoadFile(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "without a name")
}

func TestMerge_OverridesInlineParameters(t *testing.T) {
	t.Parallel()

	base := New()
	base.Add("p_outlet", cty.NumberFloatVal(1))
	overlay := New()
	overlay.Add("p_outlet", cty.NumberFloatVal(2))
	overlay.Add("q_in", cty.NumberFloatVal(3))

	base.Merge(overlay)

	require.Equal(t, []string{"p_outlet", "q_in"}, base.Names())
	got, err := base.Lookup("p_outlet")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.NumberFloatVal(2)))
}
