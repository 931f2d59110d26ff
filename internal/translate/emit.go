package translate

import (
	"regexp"
	"strings"
)

const tab = "  "

// Options configure how a parsed formula body is rendered.
type Options struct {
	// Known holds every name that must not be re-declared on first
	// assignment: classified symbols and required outputs.
	Known map[string]bool
	// Renames are token-level identifier rewrites applied to every
	// statement, e.g. the reserved time symbol onto its declared C name.
	Renames map[string]string
	// Depth is the indentation depth of statement lines: two levels for a
	// guard-enclosed body, three inside a per-element loop.
	Depth int
	// Outputs are the required-output identifiers in declared order.
	// The first textual occurrence of each is replaced by the matching
	// entry of Targets; later occurrences are left untouched.
	Outputs []string
	Targets []string
}

// Emit renders statement nodes into the C body of a dispatch block. Every
// emitted statement line is preceded by a newline, blank lines are preserved
// verbatim, and the text always ends with a newline. Emission is a pure
// function of its inputs.
func Emit(stmts []Stmt, opts Options) string {
	known := make(map[string]bool, len(opts.Known))
	for name := range opts.Known {
		known[name] = true
	}

	var b strings.Builder
	depth := opts.Depth
	conditionalOpened := false

	for _, s := range stmts {
		if s.Kind == StmtBlank {
			b.WriteString("\n")
			continue
		}

		text := applyRenames(s.Text, opts.Renames)
		if s.Kind == StmtAssign && !known[s.LHS] {
			known[s.LHS] = true
			text = "const cs_real_t " + text
		}

		if strings.HasPrefix(text, "}") {
			depth--
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(tab, depth))
		b.WriteString(text)
		if strings.HasSuffix(text, "{") {
			depth++
		}
		if s.Opened {
			conditionalOpened = true
		}
	}

	body := b.String()
	if conditionalOpened && !strings.HasSuffix(body, "}") {
		body += "\n" + strings.Repeat(tab, depth-1) + "}\n"
	} else {
		body += "\n"
	}

	for i, out := range opts.Outputs {
		if i < len(opts.Targets) {
			body = strings.Replace(body, out, opts.Targets[i], 1)
		}
	}
	return body
}

// applyRenames rewrites whole identifier tokens only, so a rename of "t"
// leaves "dt" and "iter" alone.
func applyRenames(text string, renames map[string]string) string {
	for from, to := range renames {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(from) + `\b`)
		text = re.ReplaceAllString(text, to)
	}
	return text
}

// mathBuiltins maps the formula language's math functions onto their
// internal library names.
var mathBuiltins = [...][2]string{
	{"abs", "cs_math_fabs"},
	{"min", "cs_math_fmin"},
	{"max", "cs_math_fmax"},
}

// RewriteBuiltins replaces supported math function calls throughout an
// expression before translation.
func RewriteBuiltins(expression string) string {
	for _, m := range mathBuiltins {
		expression = strings.ReplaceAll(expression, m[0]+"(", m[1]+"(")
	}
	return expression
}
