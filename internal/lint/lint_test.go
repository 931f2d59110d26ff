package lint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck_CleanFormula(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := NewChecker([]string{"x", "y", "z", "t", "rho0"})

	// --- Act ---
	issues := c.Check("density::all_cells",
		"a = rho0 * (1 + 0.01 * x);\nif (z > 0.5)\nresult = a * t;\nelse\nresult = a;")

	// --- Assert ---
	require.Empty(t, issues)
}

func TestCheck_UnknownNameIsReported(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x"})

	issues := c.Check("density::all_cells", "result = x * rho_typo;")

	require.Len(t, issues, 1)
	require.Equal(t, "density::all_cells", issues[0].Key)
	require.Contains(t, issues[0].Message, "rho_typo")
}

func TestCheck_AssignedNamesJoinEnvironment(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x"})

	issues := c.Check("k", "a = x + 2;\nresult = a * 3;")

	require.Empty(t, issues, "a is defined by the first statement")
}

func TestCheck_MalformedArithmetic(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x"})

	issues := c.Check("k", "result = x * * 2;")

	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Line, "result = x * * 2;")
}

func TestCheck_BadBranchCondition(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x"})

	issues := c.Check("k", "if (x > unknown_limit)\nresult = 1;\nelse\nresult = 2;")

	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, "unknown_limit")
}

func TestCheck_MathFunctionsAllowed(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x", "y"})

	issues := c.Check("k", "result = sqrt(x*x + y*y) + exp(-x) + abs(y);")

	require.Empty(t, issues)
}

func TestCheck_CommentsIgnored(t *testing.T) {
	t.Parallel()

	c := NewChecker([]string{"x"})

	issues := c.Check("k", "# per-case tweak\nresult = x; # inline note")

	require.Empty(t, issues)
}
