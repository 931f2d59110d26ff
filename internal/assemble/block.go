package assemble

import (
	"fmt"
	"strings"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/notebook"
	"github.com/vk/megc/internal/symbols"
	"github.com/vk/megc/internal/translate"
	"github.com/vk/megc/internal/variant"
)

const tab = "  "

// Assembler renders registered formula definitions into generated source
// text for one solver package.
type Assembler struct {
	pkg  variant.Variant
	book *notebook.Book
}

// New creates an assembler for the given solver package and notebook.
func New(pkg variant.Variant, book *notebook.Book) *Assembler {
	return &Assembler{pkg: pkg, book: book}
}

// VolumeBlock renders one volume formula into its dispatch block: guard on
// entity and zone name, declarations, the cell loop, and the translated
// body writing the target field.
func (a *Assembler) VolumeBlock(f *config.VolumeFormula) (string, error) {
	blk, err := symbols.Classify(symbols.Request{
		Lines:    translate.ScanLines(f.Expression),
		Symbols:  f.Symbols,
		Scalars:  f.Scalars,
		Required: f.Required,
		Assigned: translate.AssignedNames(f.Expression),
		Book:     a.book,
		Variant:  a.pkg,
		Phase:    variant.ParsePhase(f.Name),
		Domain:   symbols.DomainVolume,
		Looped:   true,
	})
	if err != nil {
		return "", fmt.Errorf("volume formula %q: %w", f.Key(), err)
	}

	expr := translate.RewriteBuiltins(f.Expression)
	body := translate.Emit(translate.Parse(expr), translate.Options{
		Known:   blk.KnownNames(),
		Renames: blk.Renames,
		Depth:   3,
		Outputs: firstOnly(f.Required),
		Targets: []string{"f->val[c_id]"},
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%sif (strcmp(f->name, %q) == 0 && strcmp(vz->name, %q) == 0) {\n",
		tab, f.Name, f.Zone)
	writeStmts(&b, 2, blk.Defs)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(tab, 2) + "for (cs_lnum_t e_id = 0; e_id < vz->n_cells; e_id++) {\n")
	b.WriteString(strings.Repeat(tab, 3) + "cs_lnum_t c_id = vz->cell_ids[e_id];\n")
	writeStmts(&b, 3, blk.LoopDecls)
	b.WriteString(body)
	b.WriteString(strings.Repeat(tab, 2) + "}\n")
	b.WriteString(tab + "}\n")
	return b.String(), nil
}

// BoundaryBlock renders one boundary formula into its dispatch block. The
// per-face loop is omitted for the flow-integral condition kinds, which
// produce a single value for the whole patch; the output buffer is sized
// accordingly.
func (a *Assembler) BoundaryBlock(f *config.BoundaryFormula) (string, error) {
	looped := f.Condition.NeedsLoop()

	blk, err := symbols.Classify(symbols.Request{
		Lines:    translate.ScanLines(f.Expression),
		Required: f.Required,
		Assigned: translate.AssignedNames(f.Expression),
		Book:     a.book,
		Variant:  a.pkg,
		Phase:    variant.NoPhase,
		Domain:   symbols.DomainBoundary,
		Looped:   looped,
	})
	if err != nil {
		return "", fmt.Errorf("boundary formula %q: %w", f.Key(), err)
	}

	depth := 2
	if looped {
		depth = 3
	}
	targets := make([]string, len(f.Required))
	for i := range f.Required {
		if looped {
			targets[i] = fmt.Sprintf("new_vals[%d * bz->n_faces + e_id]", i)
		} else {
			targets[i] = fmt.Sprintf("new_vals[%d]", i)
		}
	}

	expr := translate.RewriteBuiltins(f.Expression)
	body := translate.Emit(translate.Parse(expr), translate.Options{
		Known:   blk.KnownNames(),
		Renames: blk.Renames,
		Depth:   depth,
		Outputs: f.Required,
		Targets: targets,
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%sif (strcmp(field_name, %q) == 0 &&\n", tab, f.Field)
	fmt.Fprintf(&b, "%s    strcmp(condition, %q) == 0 &&\n", tab, string(f.Condition))
	fmt.Fprintf(&b, "%s    strcmp(bz->name, %q) == 0) {\n", tab, f.Zone)
	b.WriteString("\n")

	if looped {
		fmt.Fprintf(&b, "%sconst int vals_size = bz->n_faces * %d;\n",
			strings.Repeat(tab, 2), len(f.Required))
	} else {
		fmt.Fprintf(&b, "%sconst int vals_size = %d;\n",
			strings.Repeat(tab, 2), len(f.Required))
	}
	b.WriteString(strings.Repeat(tab, 2) + "BFT_MALLOC(new_vals, vals_size, cs_real_t);\n")
	b.WriteString("\n")
	writeStmts(&b, 2, blk.Defs)

	if looped {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(tab, 2) + "for (cs_lnum_t e_id = 0; e_id < bz->n_faces; e_id++) {\n")
		b.WriteString(strings.Repeat(tab, 3) + "cs_lnum_t f_id = bz->face_ids[e_id];\n")
		writeStmts(&b, 3, blk.LoopDecls)
	}

	b.WriteString(body)

	if looped {
		b.WriteString(strings.Repeat(tab, 2) + "}\n")
	}
	b.WriteString(tab + "}\n")
	return b.String(), nil
}

// writeStmts emits declaration statements at the given indentation depth.
// An empty statement stands for a blank separator line.
func writeStmts(b *strings.Builder, depth int, stmts []string) {
	for _, s := range stmts {
		if s == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(tab, depth))
		b.WriteString(s)
		b.WriteString("\n")
	}
}

// firstOnly narrows a volume formula's required list to its single primary
// output, which is the only one bound to the result slot.
func firstOnly(required []string) []string {
	if len(required) == 0 {
		return nil
	}
	return required[:1]
}
