package symbols

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/notebook"
	"github.com/vk/megc/internal/translate"
	"github.com/vk/megc/internal/variant"
)

func volumeRequest(expr string, syms []*config.Symbol) Request {
	return Request{
		Lines:    translate.ScanLines(expr),
		Symbols:  syms,
		Assigned: translate.AssignedNames(expr),
		Book:     notebook.New(),
		Variant:  variant.CodeSaturne,
		Phase:    variant.NoPhase,
		Domain:   DomainVolume,
		Looped:   true,
	}
}

func TestClassify_CoordinateArrayDeclaredOnce(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	req := volumeRequest("d = x*x + y*y + z*z", []*config.Symbol{
		{Name: "x"}, {Name: "y"}, {Name: "z"},
	})

	// --- Act ---
	blk, err := Classify(req)

	// --- Assert ---
	require.NoError(t, err)
	joined := strings.Join(blk.Defs, "\n")
	require.Equal(t, 1, strings.Count(joined, "cs_glob_mesh_quantities->cell_cen"),
		"one shared coordinate array regardless of how many coordinates are used")
	require.Len(t, blk.LoopDecls, 3, "one per-element binding per coordinate")
	require.Equal(t, "const cs_real_t x = xyz[c_id][0];", blk.LoopDecls[0])
	require.Equal(t, KindCoordinate, blk.Known["x"])
}

func TestClassify_PrecedenceNotebookOverConstant(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "rho0" is both a notebook parameter and a package property; the
	// notebook wins by precedence.
	book := notebook.New()
	book.Add("rho0", cty.NumberFloatVal(1.2))
	req := volumeRequest("d = rho0", []*config.Symbol{{Name: "rho0"}})
	req.Book = book

	// --- Act ---
	blk, err := Classify(req)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, KindParameter, blk.Known["rho0"])
	require.Contains(t, blk.Defs, `const cs_real_t rho0 = cs_notebook_parameter_value_by_name("rho0");`)
}

func TestClassify_PackageConstant(t *testing.T) {
	t.Parallel()

	req := volumeRequest("d = rho0 * mu0", []*config.Symbol{{Name: "rho0"}, {Name: "mu0"}})

	blk, err := Classify(req)

	require.NoError(t, err)
	require.Contains(t, blk.Defs, "const cs_real_t rho0 = cs_glob_fluid_properties->ro0;")
	require.Contains(t, blk.Defs, "const cs_real_t mu0 = cs_glob_fluid_properties->viscl0;")
}

func TestClassify_PhaseIndexedConstant(t *testing.T) {
	t.Parallel()

	req := volumeRequest("d = rho0", []*config.Symbol{{Name: "rho0"}})
	req.Variant = variant.NeptuneCFD
	req.Phase = variant.Phase(1)

	blk, err := Classify(req)

	require.NoError(t, err)
	require.Contains(t, blk.Defs, "const cs_real_t rho0 = nc_phases->p_ini[1]->ro0;")
}

func TestClassify_NeptuneConstantWithoutPhaseFails(t *testing.T) {
	t.Parallel()

	req := volumeRequest("d = rho0", []*config.Symbol{{Name: "rho0"}})
	req.Variant = variant.NeptuneCFD
	req.Phase = variant.NoPhase

	_, err := Classify(req)

	require.Error(t, err)
	require.Contains(t, err.Error(), "phase-qualified")
}

func TestClassify_LiteralDefault(t *testing.T) {
	t.Parallel()

	def := cty.NumberFloatVal(2.5)
	req := volumeRequest("d = c + 1", []*config.Symbol{{Name: "c", Default: &def}})

	blk, err := Classify(req)

	require.NoError(t, err)
	require.Equal(t, KindLiteral, blk.Known["c"])
	require.Contains(t, blk.Defs, "const cs_real_t c = 2.5;")
}

func TestClassify_ScalarAndFieldFallback(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "temp" is a declared dependent scalar; "nu_t" has no default and no
	// scalar entry, so it falls back to a field sample of "nusselt".
	req := volumeRequest("d = temp + nu_t", []*config.Symbol{
		{Name: "temp"},
		{Name: "nu_t", Field: "nusselt"},
	})
	req.Scalars = []string{"temp"}

	// --- Act ---
	blk, err := Classify(req)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, KindScalar, blk.Known["temp"])
	require.Equal(t, KindFieldSample, blk.Known["nu_t"])
	require.Contains(t, blk.Defs, `const cs_real_t *temp_vals = cs_field_by_name("temp")->val;`)
	require.Contains(t, blk.Defs, `const cs_real_t *nu_t_vals = cs_field_by_name("nusselt")->val;`)
	require.Contains(t, blk.LoopDecls, "const cs_real_t temp = temp_vals[c_id];")
	require.Contains(t, blk.LoopDecls, "const cs_real_t nu_t = nu_t_vals[c_id];")
}

func TestClassify_ReservedTimeRenamedInVolumeDomain(t *testing.T) {
	t.Parallel()

	req := volumeRequest("d = t * dt", []*config.Symbol{{Name: "t"}, {Name: "dt"}})

	blk, err := Classify(req)

	require.NoError(t, err)
	require.Contains(t, blk.Defs, "const cs_real_t time = cs_glob_time_step->t_cur;")
	require.Contains(t, blk.Defs, "const cs_real_t dt = cs_glob_time_step->dt;")
	require.Equal(t, "time", blk.Renames["t"])
}

func TestClassify_PiDeclaredOnce(t *testing.T) {
	t.Parallel()

	req := volumeRequest("a = 2 * pi\nb = pi / 4", nil)

	blk, err := Classify(req)

	require.NoError(t, err)
	joined := strings.Join(blk.Defs, "\n")
	require.Equal(t, 1, strings.Count(joined, "cs_math_pi"))
}

func TestClassify_RequiredOutputsPreKnown(t *testing.T) {
	t.Parallel()

	req := volumeRequest("q = 1", nil)
	req.Required = []string{"q"}

	blk, err := Classify(req)

	require.NoError(t, err)
	require.Equal(t, KindOutput, blk.Known["q"])
	require.Empty(t, blk.Defs, "outputs never produce declarations")
}

func TestClassify_BoundaryImplicitSymbols(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	book := notebook.New()
	book.Add("p_outlet", cty.NumberFloatVal(101325))
	req := Request{
		Lines:    translate.ScanLines("H = p_outlet + z + t"),
		Required: []string{"H"},
		Book:     book,
		Variant:  variant.CodeSaturne,
		Phase:    variant.NoPhase,
		Domain:   DomainBoundary,
		Looped:   true,
	}

	// --- Act ---
	blk, err := Classify(req)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, KindCoordinate, blk.Known["z"])
	require.Equal(t, KindReserved, blk.Known["t"])
	require.Equal(t, KindParameter, blk.Known["p_outlet"])
	require.Contains(t, blk.Defs, "const cs_real_t t = cs_glob_time_step->t_cur;")
	require.Contains(t, blk.Defs, `const cs_real_t p_outlet = cs_notebook_parameter_value_by_name("p_outlet");`)
	require.Contains(t, blk.LoopDecls, "const cs_real_t z = xyz[f_id][2];")
	require.Contains(t, strings.Join(blk.Defs, "\n"), "b_face_cog")
	require.Empty(t, blk.Renames, "boundary formulas keep the reserved time name")
}

func TestClassify_UnloopedBoundaryIgnoresCoordinates(t *testing.T) {
	t.Parallel()

	req := Request{
		Lines:    translate.ScanLines("q_m = 3.2 + x"),
		Required: []string{"q_m"},
		Book:     notebook.New(),
		Variant:  variant.CodeSaturne,
		Phase:    variant.NoPhase,
		Domain:   DomainBoundary,
		Looped:   false,
	}

	blk, err := Classify(req)

	require.NoError(t, err)
	_, classified := blk.Known["x"]
	require.False(t, classified, "flow-integral formulas have no per-face coordinates")
	require.Empty(t, blk.LoopDecls)
}
