package translate

import (
	"strings"
)

// StmtKind discriminates the per-line statement nodes.
type StmtKind int

const (
	// StmtBlank is an empty source line, preserved verbatim.
	StmtBlank StmtKind = iota
	// StmtIf opens a conditional block.
	StmtIf
	// StmtElse continues a conditional block ("else" or "else if").
	StmtElse
	// StmtClose is a line starting with a closing brace.
	StmtClose
	// StmtAssign assigns an expression to an identifier.
	StmtAssign
	// StmtExpr is any other expression or comment line.
	StmtExpr
)

// Stmt is one parsed formula line. Text holds the normalized statement,
// braces included; LHS is only set for assignments.
type Stmt struct {
	Kind StmtKind
	LHS  string
	Text string
	// Opened records that the parser appended the opening brace itself,
	// which obliges the emitter to close the block if the user never does.
	Opened bool
}

// Parse converts a multi-line expression into statement nodes, one per
// source line.
func Parse(expression string) []Stmt {
	lines := strings.Split(expression, "\n")
	stmts := make([]Stmt, len(lines))
	for i, line := range lines {
		stmts[i] = parseLine(line)
	}
	return stmts
}

// AssignedNames returns the set of identifiers the expression assigns to.
// The classifier uses it to tell user-local temporaries apart from
// field-sample fallbacks.
func AssignedNames(expression string) map[string]bool {
	assigned := make(map[string]bool)
	for _, s := range Parse(expression) {
		if s.Kind == StmtAssign {
			assigned[s.LHS] = true
		}
	}
	return assigned
}

func parseLine(raw string) Stmt {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Stmt{Kind: StmtBlank}
	}

	code, comment := splitComment(trimmed)
	code = strings.TrimSpace(code)
	if code == "" {
		return Stmt{Kind: StmtExpr, Text: comment}
	}

	switch {
	case hasElseKeyword(code):
		// Normalize to "} else ... {" regardless of what the user typed.
		if !strings.HasPrefix(code, "}") {
			code = "} " + code
		}
		if !strings.HasSuffix(code, "{") {
			code += " {"
		}
		return Stmt{Kind: StmtElse, Text: join(code, comment)}

	case strings.HasPrefix(code, "}"):
		return Stmt{Kind: StmtClose, Text: join(code, comment)}

	case hasIfKeyword(code):
		opened := false
		if !strings.HasSuffix(code, "{") {
			code += " {"
			opened = true
		}
		return Stmt{Kind: StmtIf, Text: join(code, comment), Opened: opened}
	}

	if lhs, ok := assignTarget(code); ok {
		return Stmt{Kind: StmtAssign, LHS: lhs, Text: join(code, comment)}
	}
	return Stmt{Kind: StmtExpr, Text: join(code, comment)}
}

// splitComment separates a trailing formula comment (marked with '#') from
// the code part and rewrites the marker to the C inline comment syntax.
func splitComment(line string) (code, comment string) {
	i := strings.IndexByte(line, '#')
	if i < 0 {
		return line, ""
	}
	return line[:i], "//" + line[i+1:]
}

func join(code, comment string) string {
	if comment == "" {
		return code
	}
	return code + " " + comment
}

func hasIfKeyword(code string) bool {
	if !strings.HasPrefix(code, "if") {
		return false
	}
	rest := code[len("if"):]
	return rest == "" || rest[0] == ' ' || rest[0] == '('
}

func hasElseKeyword(code string) bool {
	i := strings.Index(code, "else")
	if i < 0 {
		return false
	}
	before := i == 0 || !isIdentByte(code[i-1])
	after := i+len("else") == len(code) || !isIdentByte(code[i+len("else")])
	return before && after
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// assignTarget reports whether code is an assignment and returns its target
// identifier. Comparison operators (==, <=, >=, !=) do not count.
func assignTarget(code string) (string, bool) {
	for i := 0; i < len(code); i++ {
		if code[i] != '=' {
			continue
		}
		if i+1 < len(code) && code[i+1] == '=' {
			i++ // skip "=="
			continue
		}
		if i > 0 && strings.IndexByte("<>!=", code[i-1]) >= 0 {
			continue
		}
		lhs := strings.TrimSpace(code[:i])
		if lhs == "" {
			return "", false
		}
		return lhs, true
	}
	return "", false
}
