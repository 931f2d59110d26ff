package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no definition exists for a key.
var ErrNotFound = errors.New("definition not found")

// DuplicateDefinitionError reports an attempt to register a second formula
// under a key that already holds one. It carries the expression text of the
// prior definition so the caller can show the user what conflicts.
type DuplicateDefinitionError struct {
	Key             string
	PriorExpression string
}

// Error implements the error interface.
func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("formula for %q was already defined:\n%s", e.Key, e.PriorExpression)
}

// Entry is the contract a definition must satisfy to be registered.
type Entry interface {
	// Key is the composite identity of the definition, e.g. "zone::field".
	Key() string
	// Text is the raw expression text, used in duplicate diagnostics.
	Text() string
}

// Registry is an order-preserving keyed store of formula definitions.
type Registry[T Entry] struct {
	order []T
	index map[string]T
}

// New creates an empty registry.
func New[T Entry]() *Registry[T] {
	return &Registry[T]{index: make(map[string]T)}
}

// Register adds a definition under its key. It returns a
// *DuplicateDefinitionError and leaves the registry unchanged when the key
// is already present.
func (r *Registry[T]) Register(def T) error {
	key := def.Key()
	if prior, exists := r.index[key]; exists {
		return &DuplicateDefinitionError{Key: key, PriorExpression: prior.Text()}
	}
	r.index[key] = def
	r.order = append(r.order, def)
	return nil
}

// Lookup returns the definition registered under key, or ErrNotFound.
func (r *Registry[T]) Lookup(key string) (T, error) {
	def, ok := r.index[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return def, nil
}

// All returns the definitions in registration order. The returned slice is
// shared; callers must not mutate it.
func (r *Registry[T]) All() []T {
	return r.order
}

// Len returns the number of registered definitions.
func (r *Registry[T]) Len() int {
	return len(r.order)
}
