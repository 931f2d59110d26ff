package symbols

import (
	"fmt"
	"strings"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/notebook"
	"github.com/vk/megc/internal/variant"
)

// Request carries everything the classifier needs for one formula.
type Request struct {
	// Lines is the expression scanned into per-line atom lists.
	Lines [][]string
	// Symbols are the known symbol descriptors of a volume formula.
	// Boundary formulas carry none; their candidate names are implicit.
	Symbols []*config.Symbol
	// Scalars are the formula's dependent scalar-field names.
	Scalars []string
	// Required are the required-output identifiers, pre-known by contract.
	Required []string
	// Assigned holds the names the formula assigns to. An assigned name
	// with no other classification is a user-local temporary declared by
	// the translator, never a field-sample fallback.
	Assigned map[string]bool
	Book     *notebook.Book
	Variant  variant.Variant
	Phase    variant.Phase
	Domain   Domain
	// Looped is false only for the flow-integral boundary kinds, which
	// evaluate once for the whole patch and therefore never see
	// coordinates.
	Looped bool
}

// Block is the classifier's contribution to one dispatch block.
type Block struct {
	// Defs are declaration statements emitted before the element loop.
	// An empty string stands for a blank separator line.
	Defs []string
	// LoopDecls are per-element bindings emitted inside the loop.
	LoopDecls []string
	// Known maps every resolved name to its category.
	Known map[string]Kind
	// Renames are identifier rewrites the translator must apply, e.g. the
	// reserved time symbol onto the name it was declared under.
	Renames map[string]string
}

// KnownNames returns the resolved names as a set for the translator.
func (b *Block) KnownNames() map[string]bool {
	names := make(map[string]bool, len(b.Known))
	for name := range b.Known {
		names[name] = true
	}
	return names
}

var coords = []string{"x", "y", "z"}

type fieldRef struct {
	name  string
	field string
}

// Classify resolves every name the expression references, in the fixed
// precedence order, and produces the declarations the block needs. Each
// name is classified exactly once across all lines.
func Classify(req Request) (*Block, error) {
	blk := &Block{
		Known:   make(map[string]Kind),
		Renames: make(map[string]string),
	}
	for _, out := range req.Required {
		blk.Known[out] = KindOutput
	}

	idx := req.Domain.indexVar()

	// Reserved and coordinate names are candidates whether or not the case
	// lists them as descriptors; descriptors follow in declared order.
	candidates := implicitCandidates(req.Domain == DomainBoundary, req.Looped)
	seen := make(map[string]bool, len(candidates)+len(req.Symbols))
	for _, c := range candidates {
		seen[c.Name] = true
	}
	for _, s := range req.Symbols {
		if !seen[s.Name] {
			seen[s.Name] = true
			candidates = append(candidates, s)
		}
	}

	var defs, loopDecls []string
	var fields []fieldRef
	needCoords := false

	for _, line := range req.Lines {
		for _, s := range candidates {
			sn := s.Name
			if _, done := blk.Known[sn]; done || !containsAtom(line, sn) {
				continue
			}
			switch {
			case sn == "dt":
				defs = append(defs, "const cs_real_t dt = cs_glob_time_step->dt;")
				blk.Known[sn] = KindReserved

			case sn == "t":
				if req.Domain == DomainVolume {
					// The volume unit already binds "f" for the target
					// field; "time" keeps the declaration unambiguous.
					defs = append(defs, "const cs_real_t time = cs_glob_time_step->t_cur;")
					blk.Renames["t"] = "time"
				} else {
					defs = append(defs, "const cs_real_t t = cs_glob_time_step->t_cur;")
				}
				blk.Known[sn] = KindReserved

			case sn == "iter":
				defs = append(defs, "const int iter = cs_glob_time_step->nt_cur;")
				blk.Known[sn] = KindReserved

			case coordIndex(sn) >= 0:
				loopDecls = append(loopDecls,
					fmt.Sprintf("const cs_real_t %s = xyz[%s][%d];", sn, idx, coordIndex(sn)))
				blk.Known[sn] = KindCoordinate
				needCoords = true

			case req.Book != nil && req.Book.Has(sn):
				defs = append(defs,
					fmt.Sprintf("const cs_real_t %s = cs_notebook_parameter_value_by_name(%q);", sn, sn))
				blk.Known[sn] = KindParameter

			case req.Variant.HasProperty(sn):
				accessor, err := req.Variant.Accessor(sn, req.Phase)
				if err != nil {
					return nil, err
				}
				defs = append(defs, fmt.Sprintf("const cs_real_t %s = %s;", sn, accessor))
				blk.Known[sn] = KindConstant

			case s.Default != nil:
				lit, err := renderLiteral(*s.Default)
				if err != nil {
					return nil, fmt.Errorf("symbol %q: %w", sn, err)
				}
				defs = append(defs, fmt.Sprintf("const cs_real_t %s = %s;", sn, lit))
				blk.Known[sn] = KindLiteral

			case containsString(req.Scalars, sn):
				// Resolved by the scalar pass below.

			case req.Assigned[sn]:
				// A user-local temporary; the translator declares it on
				// first assignment.

			default:
				fields = append(fields, fieldRef{name: sn, field: fieldName(s)})
				blk.Known[sn] = KindFieldSample
			}
		}

		// Boundary formulas may reference notebook parameters without a
		// descriptor; resolve each against the parameter actually matched.
		if req.Domain == DomainBoundary && req.Book != nil {
			for _, name := range req.Book.Names() {
				if _, done := blk.Known[name]; done || !containsAtom(line, name) {
					continue
				}
				defs = append(defs,
					fmt.Sprintf("const cs_real_t %s = cs_notebook_parameter_value_by_name(%q);", name, name))
				blk.Known[name] = KindParameter
			}
		}
	}

	if len(fields) > 0 {
		for _, f := range fields {
			defs = append(defs,
				fmt.Sprintf("const cs_real_t *%s_vals = cs_field_by_name(%q)->val;", f.name, f.field))
			loopDecls = append(loopDecls,
				fmt.Sprintf("const cs_real_t %s = %s_vals[%s];", f.name, f.name, idx))
		}
		loopDecls = append(loopDecls, "")
	}

	usedScalar := false
	for _, sn := range req.Scalars {
		if _, done := blk.Known[sn]; done || !referenced(req.Lines, sn) {
			continue
		}
		defs = append(defs,
			fmt.Sprintf("const cs_real_t *%s_vals = cs_field_by_name(%q)->val;", sn, sn))
		loopDecls = append(loopDecls,
			fmt.Sprintf("const cs_real_t %s = %s_vals[%s];", sn, sn, idx))
		blk.Known[sn] = KindScalar
		usedScalar = true
	}
	if usedScalar {
		loopDecls = append(loopDecls, "")
	}

	if _, done := blk.Known["pi"]; !done && referenced(req.Lines, "pi") {
		defs = append(defs, "const cs_real_t pi = cs_math_pi;")
		blk.Known["pi"] = KindConstant
	}

	if needCoords {
		coordDecl := fmt.Sprintf(
			"const cs_real_3_t *xyz = (cs_real_3_t *)cs_glob_mesh_quantities->%s;",
			req.Domain.coordSource())
		defs = append([]string{coordDecl, ""}, defs...)
	}

	blk.Defs = defs
	blk.LoopDecls = loopDecls
	return blk, nil
}

// implicitCandidates are the reserved and coordinate names every formula
// may use without a descriptor. Unlooped boundary formulas never see
// coordinates.
func implicitCandidates(boundary, looped bool) []*config.Symbol {
	names := []string{"t", "dt", "iter"}
	if !boundary || looped {
		names = append([]string{"x", "y", "z"}, names...)
	}
	syms := make([]*config.Symbol, len(names))
	for i, n := range names {
		syms[i] = &config.Symbol{Name: n}
	}
	return syms
}

func coordIndex(name string) int {
	for i, c := range coords {
		if c == name {
			return i
		}
	}
	return -1
}

func fieldName(s *config.Symbol) string {
	if s.Field != "" {
		return s.Field
	}
	return strings.ToLower(s.Name)
}

func containsAtom(line []string, name string) bool {
	for _, atom := range line {
		if atom == name {
			return true
		}
	}
	return false
}

func containsString(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func referenced(lines [][]string, name string) bool {
	for _, line := range lines {
		if containsAtom(line, name) {
			return true
		}
	}
	return false
}
