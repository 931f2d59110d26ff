// Package lint offers an optional pre-generation check of user formulas.
// Each assignment and condition is compiled as an expression against the
// names the formula is allowed to reference, so typos and malformed
// arithmetic surface as warnings before the generated C ever reaches a
// compiler.
package lint

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/vk/megc/internal/translate"
)

// Issue is one advisory finding. Findings never block generation; the
// formula language is close to C but not identical to the expression
// dialect used for checking, so a finding is a hint, not a verdict.
type Issue struct {
	// Key identifies the formula the finding belongs to.
	Key string
	// Line is the statement the finding was raised on.
	Line string
	// Message describes what failed to compile.
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %q: %s", i.Key, i.Line, i.Message)
}

// Checker compiles formula fragments against a fixed name environment.
type Checker struct {
	env map[string]any
}

// mathNames are the C math functions user formulas may call besides the
// abs/min/max builtins, which the expression dialect already provides.
var mathNames = []string{
	"sqrt", "exp", "log", "pow", "mod",
	"sin", "cos", "tan", "asin", "acos", "atan",
	"sinh", "cosh", "tanh",
}

// NewChecker builds a checker whose environment contains the given symbol
// names plus the supported math functions.
func NewChecker(names []string) *Checker {
	env := make(map[string]any, len(names)+len(mathNames))
	for _, n := range names {
		env[n] = float64(0)
	}
	for _, n := range mathNames {
		env[n] = func(args ...float64) float64 { return 0 }
	}
	return &Checker{env: env}
}

// Check parses the expression into statements and compiles every assignment
// right-hand side and every branch condition. Names assigned earlier in the
// expression join the environment for later statements.
func (c *Checker) Check(key, expression string) []Issue {
	env := make(map[string]any, len(c.env))
	for k, v := range c.env {
		env[k] = v
	}

	var issues []Issue
	report := func(line, fragment string, err error) {
		issues = append(issues, Issue{
			Key:     key,
			Line:    strings.TrimSpace(line),
			Message: fmt.Sprintf("cannot evaluate %q: %v", fragment, compactError(err)),
		})
	}

	for _, stmt := range translate.Parse(expression) {
		switch stmt.Kind {
		case translate.StmtAssign:
			rhs := assignRHS(stmt.Text)
			if rhs == "" {
				continue
			}
			if _, err := expr.Compile(rhs, expr.Env(env)); err != nil {
				report(stmt.Text, rhs, err)
			}
			env[stmt.LHS] = float64(0)
		case translate.StmtIf:
			cond := branchCondition(stmt.Text)
			if cond == "" {
				continue
			}
			if _, err := expr.Compile(cond, expr.Env(env)); err != nil {
				report(stmt.Text, cond, err)
			}
		}
	}
	return issues
}

// assignRHS extracts the right-hand side of an assignment statement,
// stripping the trailing semicolon and any comment.
func assignRHS(text string) string {
	_, rhs, ok := strings.Cut(text, "=")
	if !ok {
		return ""
	}
	if i := strings.Index(rhs, "//"); i >= 0 {
		rhs = rhs[:i]
	}
	rhs = strings.TrimSpace(rhs)
	return strings.TrimSuffix(rhs, ";")
}

// branchCondition extracts the parenthesized condition of an if statement.
func branchCondition(text string) string {
	open := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if open < 0 || end <= open {
		return ""
	}
	return strings.TrimSpace(text[open+1 : end])
}

// compactError collapses multi-line compiler output into its first line.
func compactError(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "\n"); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
