// Package notebook exposes the case notebook: named scalar parameters the
// user maintains alongside the case. The generator never inlines values; it
// only needs the names to classify symbols, since generated code performs
// the lookup by name at runtime.
package notebook

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/zclconf/go-cty/cty"
)

// ErrNotFound is returned by Lookup for an unknown parameter name.
var ErrNotFound = errors.New("notebook parameter not found")

// Book is an ordered name to value mapping of notebook parameters.
type Book struct {
	order []string
	vals  map[string]cty.Value
}

// New creates an empty notebook.
func New() *Book {
	return &Book{vals: make(map[string]cty.Value)}
}

// Add inserts a parameter. Re-adding a name updates the value in place and
// keeps its original position.
func (b *Book) Add(name string, value cty.Value) {
	if _, exists := b.vals[name]; !exists {
		b.order = append(b.order, name)
	}
	b.vals[name] = value
}

// Has reports whether name is a notebook parameter.
func (b *Book) Has(name string) bool {
	_, ok := b.vals[name]
	return ok
}

// Lookup returns the value of a parameter, or ErrNotFound.
func (b *Book) Lookup(name string) (cty.Value, error) {
	v, ok := b.vals[name]
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return v, nil
}

// Names returns the parameter names in insertion order.
func (b *Book) Names() []string {
	return b.order
}

// Merge copies every parameter of other into b, overriding same-named
// entries. Used to layer a standalone notebook file over the parameters
// declared inline in the case definition.
func (b *Book) Merge(other *Book) {
	for _, name := range other.order {
		b.Add(name, other.vals[name])
	}
}

// yamlFile mirrors the on-disk notebook layout:
//
//	parameters:
//	  - name: p_outlet
//	    value: 101325.0
type yamlFile struct {
	Parameters []yamlParameter `yaml:"parameters"`
}

type yamlParameter struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// LoadFile reads a standalone YAML notebook file.
func LoadFile(path string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook file: %w", err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse notebook file %s: %w", path, err)
	}

	book := New()
	for _, p := range file.Parameters {
		if p.Name == "" {
			return nil, fmt.Errorf("notebook file %s contains a parameter without a name", path)
		}
		book.Add(p.Name, cty.NumberFloatVal(p.Value))
	}
	return book, nil
}
