package translate

import "strings"

// separators are the operator and separator characters that delimit atoms
// within a formula line.
const separators = "=+-*/();,<>!&| \t"

// Atoms splits a source line into its syntactic atoms: the fragments left
// between assignment, comparison, arithmetic, grouping and separator
// characters. Empty fragments are dropped.
func Atoms(line string) []string {
	var atoms []string
	var cur strings.Builder
	flush := func() {
		if s := cur.String(); s != "" {
			atoms = append(atoms, s)
		}
		cur.Reset()
	}
	for _, r := range line {
		if strings.ContainsRune(separators, r) {
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return atoms
}

// ScanLines splits a multi-line expression into per-line atom lists. Blank
// lines scan to an empty list so line indices stay aligned with the source.
func ScanLines(expression string) [][]string {
	lines := strings.Split(expression, "\n")
	scanned := make([][]string, len(lines))
	for i, line := range lines {
		scanned[i] = Atoms(line)
	}
	return scanned
}
