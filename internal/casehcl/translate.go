package casehcl

import (
	"fmt"
	"strings"

	"github.com/vk/megc/internal/config"
)

// translateVolumeFormula converts the HCL-specific volume block into the
// agnostic model, validating that it can actually produce output.
func translateVolumeFormula(b *volumeFormulaBlock) (*config.VolumeFormula, error) {
	if strings.TrimSpace(b.Expression) == "" {
		return nil, fmt.Errorf("volume formula %q over zone %q has an empty expression", b.Name, b.Zone)
	}
	if len(b.Required) == 0 {
		return nil, fmt.Errorf("volume formula %q over zone %q declares no required output", b.Name, b.Zone)
	}

	f := &config.VolumeFormula{
		Name:       b.Name,
		Zone:       b.Zone,
		Expression: b.Expression,
		Required:   b.Required,
		Scalars:    b.Scalars,
	}
	for _, s := range b.Symbols {
		f.Symbols = append(f.Symbols, &config.Symbol{
			Name:    s.Name,
			Default: s.Default,
			Field:   s.Field,
		})
	}
	return f, nil
}

// translateBoundaryFormula converts the HCL-specific boundary block into the
// agnostic model, validating its condition tag. A turbulence model name
// fills in the entity name and required outputs in solver order.
func translateBoundaryFormula(b *boundaryFormulaBlock) (*config.BoundaryFormula, error) {
	cond := config.Condition(b.Condition)
	if !cond.Valid() {
		return nil, fmt.Errorf("boundary formula for %q over zone %q has unknown condition %q",
			b.Field, b.Zone, b.Condition)
	}
	if strings.TrimSpace(b.Expression) == "" {
		return nil, fmt.Errorf("boundary formula for %q over zone %q has an empty expression", b.Field, b.Zone)
	}

	field, required := b.Field, b.Required
	if b.TurbulenceModel != "" {
		name, req, ok := config.TurbulenceEntity(b.TurbulenceModel)
		if !ok {
			return nil, fmt.Errorf("boundary formula over zone %q names unknown turbulence model %q",
				b.Zone, b.TurbulenceModel)
		}
		field = name
		if len(required) == 0 {
			required = req
		}
	}
	if len(required) == 0 {
		return nil, fmt.Errorf("boundary formula for %q over zone %q declares no required output", field, b.Zone)
	}

	return &config.BoundaryFormula{
		Field:      field,
		Zone:       b.Zone,
		Condition:  cond,
		Expression: b.Expression,
		Required:   required,
	}, nil
}

// translateNotebookParameter converts an inline notebook block. The value
// must evaluate to a number.
func translateNotebookParameter(b *notebookBlock) (*config.NotebookParameter, error) {
	if b.Value == nil || b.Value.IsNull() {
		return nil, fmt.Errorf("notebook parameter %q has no value", b.Name)
	}
	if !b.Value.Type().IsPrimitiveType() {
		return nil, fmt.Errorf("notebook parameter %q must be a scalar", b.Name)
	}
	return &config.NotebookParameter{Name: b.Name, Value: *b.Value}, nil
}
