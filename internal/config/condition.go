package config

// Condition tags how a boundary formula's result is applied. The tag decides
// both the dispatch guard emitted into the generated unit and whether the
// formula is evaluated per face or once for the whole patch.
type Condition string

const (
	// ConditionNorm prescribes the velocity norm on an inlet.
	ConditionNorm Condition = "norm_formula"
	// ConditionMassFlow prescribes a mass flow rate integrated over the patch.
	ConditionMassFlow Condition = "flow1_formula"
	// ConditionVolumeFlow prescribes a volume flow rate integrated over the patch.
	ConditionVolumeFlow Condition = "flow2_formula"
	// ConditionDirection prescribes the inlet flow direction vector.
	ConditionDirection Condition = "formula"
	// ConditionDirichlet prescribes the value of a variable on the patch.
	ConditionDirichlet Condition = "dirichlet_formula"
	// ConditionNeumann prescribes the flux of a variable on the patch.
	ConditionNeumann Condition = "neumann_formula"
	// ConditionExchange prescribes a flux with an exchange coefficient.
	ConditionExchange Condition = "exchange_coefficient_formula"
)

// NeedsLoop reports whether the condition kind is evaluated per boundary
// face. The two flow-integral kinds produce a single value for the patch, so
// their blocks are emitted without a face loop.
func (c Condition) NeedsLoop() bool {
	return c != ConditionMassFlow && c != ConditionVolumeFlow
}

// Valid reports whether c is one of the known condition tags.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNorm, ConditionMassFlow, ConditionVolumeFlow,
		ConditionDirection, ConditionDirichlet, ConditionNeumann,
		ConditionExchange:
		return true
	}
	return false
}
