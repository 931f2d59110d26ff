package casehcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// caseFile is the top-level structure of a case definition file.
type caseFile struct {
	VolumeFormulas   []*volumeFormulaBlock   `hcl:"volume_formula,block"`
	BoundaryFormulas []*boundaryFormulaBlock `hcl:"boundary_formula,block"`
	Notebook         []*notebookBlock        `hcl:"notebook,block"`
	Body             hcl.Body                `hcl:",remain"`
}

// volumeFormulaBlock is a `volume_formula "<name>" "<zone>"` block: a user
// law for a material property over a volume zone.
type volumeFormulaBlock struct {
	Name       string         `hcl:"name,label"`
	Zone       string         `hcl:"zone,label"`
	Expression string         `hcl:"expression"`
	Required   []string       `hcl:"required"`
	Scalars    []string       `hcl:"scalars,optional"`
	Symbols    []*symbolBlock `hcl:"symbol,block"`
}

// symbolBlock declares one known symbol of a volume formula, optionally with
// a literal default or the internal name of the field it samples.
type symbolBlock struct {
	Name    string     `hcl:"name,label"`
	Default *cty.Value `hcl:"default,optional"`
	Field   string     `hcl:"field,optional"`
}

// boundaryFormulaBlock is a `boundary_formula "<zone>" "<field>"` block: a
// user law applied on a boundary patch. When turbulence_model is set, the
// field name and required outputs are derived from the model instead of
// being spelled out.
type boundaryFormulaBlock struct {
	Zone            string   `hcl:"zone,label"`
	Field           string   `hcl:"field,label"`
	Condition       string   `hcl:"condition"`
	Expression      string   `hcl:"expression"`
	Required        []string `hcl:"required,optional"`
	TurbulenceModel string   `hcl:"turbulence_model,optional"`
}

// notebookBlock declares one notebook parameter inline in the case.
type notebookBlock struct {
	Name  string     `hcl:"name,label"`
	Value *cty.Value `hcl:"value"`
}
