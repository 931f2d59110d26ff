package assemble

import (
	"fmt"
	"strings"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/registry"
	"github.com/vk/megc/internal/variant"
)

// volumeBanner is the separator drawn between volume dispatch blocks.
var volumeBanner = tab + "/*" + strings.Repeat("-", 74) + "*/\n"

// VolumeUnit renders the complete volume source unit from the registered
// definitions, in registration order. It returns the empty string when no
// volume formula was registered.
func (a *Assembler) VolumeUnit(reg *registry.Registry[*config.VolumeFormula]) (string, error) {
	if reg.Len() == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(fileHeader)
	if a.pkg == variant.NeptuneCFD {
		b.WriteString(neptuneHeader)
	}
	b.WriteString(declsHeader)
	b.WriteString(volumeFunctionHeader)

	for _, f := range reg.All() {
		block, err := a.VolumeBlock(f)
		if err != nil {
			return "", err
		}
		b.WriteString(volumeBanner)
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s/* User defined formula for variable %s over zone %s */\n\n",
			tab, f.Name, f.Zone)
		b.WriteString(block)
		b.WriteString("\n")
	}

	b.WriteString(volumeBanner)
	b.WriteString(fileFooter)
	return b.String(), nil
}

// BoundaryUnit renders the complete boundary source unit, ending with the
// return of the allocated output buffer. It returns the empty string when
// no boundary formula was registered.
func (a *Assembler) BoundaryUnit(reg *registry.Registry[*config.BoundaryFormula]) (string, error) {
	if reg.Len() == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(fileHeader)
	b.WriteString(declsHeader)
	b.WriteString(boundaryFunctionHeader)

	for _, f := range reg.All() {
		block, err := a.BoundaryBlock(f)
		if err != nil {
			return "", err
		}
		msg := fmt.Sprintf("User defined formula for \"%s\" over BC=%s", f.Field, f.Zone)
		banner := tab + "/* " + strings.Repeat("-", len(msg)) + " */\n"
		b.WriteString(banner)
		fmt.Fprintf(&b, "%s/* %s */\n", tab, msg)
		b.WriteString(block)
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString(tab + "return new_vals;\n")
	b.WriteString(fileFooter)
	return b.String(), nil
}
