package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of every user formula in a case,
// together with the notebook parameters declared inline.
type Model struct {
	VolumeFormulas   []*VolumeFormula
	BoundaryFormulas []*BoundaryFormula
	Notebook         []*NotebookParameter
}

// Symbol describes one name a formula may reference. Exactly one of Default
// and Field is meaningful: a symbol with a literal default becomes a local
// constant, a symbol without one falls back to a sample of the named field.
type Symbol struct {
	Name    string
	Default *cty.Value
	Field   string
}

// VolumeFormula is a user law for a material property over a volume zone.
type VolumeFormula struct {
	// Name is the owning entity, e.g. "density" or "density_2" for the
	// second phase of a multiphase case.
	Name       string
	Zone       string
	Expression string
	Required   []string
	Symbols    []*Symbol
	Scalars    []string
}

// Key identifies the formula for registry purposes.
func (f *VolumeFormula) Key() string { return f.Name + "::" + f.Zone }

// Text returns the raw expression, for duplicate diagnostics.
func (f *VolumeFormula) Text() string { return f.Expression }

// BoundaryFormula is a user law applied on a boundary patch.
type BoundaryFormula struct {
	Field      string
	Zone       string
	Condition  Condition
	Expression string
	Required   []string
}

// Key identifies the formula for registry purposes.
func (f *BoundaryFormula) Key() string { return f.Zone + "::" + f.Field }

// Text returns the raw expression, for duplicate diagnostics.
func (f *BoundaryFormula) Text() string { return f.Expression }

// NotebookParameter is a named scalar the user maintains in the case
// notebook. Generated code looks the value up by name at runtime; the
// generator only needs the name to classify symbols.
type NotebookParameter struct {
	Name  string
	Value cty.Value
}
