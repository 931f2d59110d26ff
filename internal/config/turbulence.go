package config

// turbulenceEntities maps a turbulence model name to the boundary entity its
// inlet formula prescribes and the outputs the formula must assign.
// The Rij component order must match the solver (r23 before r13).
var turbulenceEntities = map[string]struct {
	name     string
	required []string
}{
	"k-epsilon":        {"turbulence_ke", []string{"k", "epsilon"}},
	"k-epsilon-PL":     {"turbulence_ke", []string{"k", "epsilon"}},
	"Rij-epsilon":      {"turbulence_rije", []string{"r11", "r22", "r33", "r12", "r23", "r13", "epsilon"}},
	"Rij-SSG":          {"turbulence_rije", []string{"r11", "r22", "r33", "r12", "r23", "r13", "epsilon"}},
	"Rij-EBRSM":        {"turbulence_rij_ebrsm", []string{"r11", "r22", "r33", "r12", "r23", "r13", "epsilon", "alpha"}},
	"v2f-BL-v2/k":      {"turbulence_v2f", []string{"k", "epsilon", "phi", "alpha"}},
	"k-omega-SST":      {"turbulence_kw", []string{"k", "omega"}},
	"Spalart-Allmaras": {"turbulence_spalart", []string{"nu_tilda"}},
}

// TurbulenceEntity maps a turbulence model name to the boundary entity name
// its formula targets and the required outputs in solver order.
func TurbulenceEntity(model string) (name string, required []string, ok bool) {
	e, ok := turbulenceEntities[model]
	if !ok {
		return "", nil, false
	}
	return e.name, append([]string(nil), e.required...), true
}
