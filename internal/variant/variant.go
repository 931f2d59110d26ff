// Package variant selects the host solver's naming conventions for physical
// constant resolution. Each supported solver package maps user-facing
// property names (rho0, mu0, ...) onto the accessor path of its global fluid
// property structure.
package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant identifies a supported host solver package.
type Variant string

const (
	// CodeSaturne is the single-phase solver package.
	CodeSaturne Variant = "code_saturne"
	// NeptuneCFD is the multiphase solver package; its fluid properties are
	// indexed by phase.
	NeptuneCFD Variant = "neptune_cfd"
)

// Parse validates a package name given on the command line.
func Parse(s string) (Variant, error) {
	switch Variant(s) {
	case CodeSaturne, NeptuneCFD:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown solver package %q", s)
}

// propertyFields maps user property names to the member name inside the
// package's fluid property structure.
var propertyFields = map[Variant]map[string]string{
	CodeSaturne: {
		"rho0": "ro0",
		"mu0":  "viscl0",
		"p0":   "p0",
		"cp0":  "cp0",
	},
	NeptuneCFD: {
		"rho0":    "ro0",
		"mu0":     "viscl0",
		"cp0":     "cp0",
		"lambda0": "lambda0",
	},
}

// HasProperty reports whether name is a physical constant of this package.
func (v Variant) HasProperty(name string) bool {
	_, ok := propertyFields[v][name]
	return ok
}

// Accessor returns the C accessor path for a physical constant, e.g.
// "cs_glob_fluid_properties->ro0" or "nc_phases->p_ini[1]->ro0". The
// multiphase package requires a phase index; asking for a phase-less
// accessor there is a configuration error rather than a silent phase 0.
func (v Variant) Accessor(property string, phase Phase) (string, error) {
	field, ok := propertyFields[v][property]
	if !ok {
		return "", fmt.Errorf("package %s has no property %q", v, property)
	}
	switch v {
	case CodeSaturne:
		return "cs_glob_fluid_properties->" + field, nil
	case NeptuneCFD:
		if phase == NoPhase {
			return "", fmt.Errorf("property %q of package %s needs a phase-qualified entity name", property, v)
		}
		return fmt.Sprintf("nc_phases->p_ini[%d]->%s", int(phase), field), nil
	}
	return "", fmt.Errorf("unknown solver package %q", string(v))
}

// Phase is a zero-based phase index parsed from an entity name.
type Phase int

// NoPhase marks an entity name that does not encode a phase.
const NoPhase Phase = -1

// ParsePhase extracts the phase index encoded as a trailing "_<N>" suffix of
// an entity name: "density_2" names the second phase, index 1. Absence of a
// suffix or a non-numeric suffix yields NoPhase explicitly.
func ParsePhase(entityName string) Phase {
	i := strings.LastIndex(entityName, "_")
	if i < 0 || i == len(entityName)-1 {
		return NoPhase
	}
	n, err := strconv.Atoi(entityName[i+1:])
	if err != nil || n < 1 {
		return NoPhase
	}
	return Phase(n - 1)
}
