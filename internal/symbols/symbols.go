// Package symbols classifies every name a formula references and produces
// the declaration statements the generated block needs.
//
// Each name resolves to exactly one Kind, decided in a fixed precedence
// order: reserved time/iteration names, spatial coordinates, notebook
// parameters, package physical constants, literal defaults, known scalar
// fields, and finally a field sample addressed by the current element index.
// A name is classified at most once per formula, no matter how many lines
// reference it.
package symbols

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind is the tagged category of a resolved symbol.
type Kind int

const (
	// KindReserved covers the time step, current time and iteration counter.
	KindReserved Kind = iota
	// KindCoordinate covers the spatial coordinates x, y, z.
	KindCoordinate
	// KindParameter is a notebook parameter resolved by name at runtime.
	KindParameter
	// KindConstant is a physical constant of the active solver package.
	KindConstant
	// KindLiteral is a symbol with a literal default from its descriptor.
	KindLiteral
	// KindScalar samples a declared dependent scalar field.
	KindScalar
	// KindFieldSample is the fallback: a sample of the field named by the
	// symbol descriptor, addressed at the current element index.
	KindFieldSample
	// KindOutput is a required-output identifier.
	KindOutput
)

// String returns the category name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindReserved:
		return "reserved"
	case KindCoordinate:
		return "coordinate"
	case KindParameter:
		return "parameter"
	case KindConstant:
		return "constant"
	case KindLiteral:
		return "literal"
	case KindScalar:
		return "scalar"
	case KindFieldSample:
		return "field-sample"
	case KindOutput:
		return "output"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Domain selects the iteration domain of a formula block.
type Domain int

const (
	// DomainVolume loops over the cells of a volume zone.
	DomainVolume Domain = iota
	// DomainBoundary loops over the faces of a boundary patch.
	DomainBoundary
)

// indexVar is the name of the native element index inside the loop.
func (d Domain) indexVar() string {
	if d == DomainBoundary {
		return "f_id"
	}
	return "c_id"
}

// coordSource is the mesh quantity the shared coordinate array aliases.
func (d Domain) coordSource() string {
	if d == DomainBoundary {
		return "b_face_cog"
	}
	return "cell_cen"
}

// renderLiteral turns a descriptor default into C literal text.
func renderLiteral(v cty.Value) (string, error) {
	switch v.Type() {
	case cty.Number:
		return v.AsBigFloat().Text('g', -1), nil
	case cty.String:
		return v.AsString(), nil
	}
	return "", fmt.Errorf("unsupported default literal type %s", v.Type().FriendlyName())
}
