// Package registry provides the order-preserving store for formula
// definitions collected during a generation pass.
//
// Registration order is significant: it becomes the emission order of the
// dispatch blocks in the generated source unit. A key may only be registered
// once per pass; a duplicate aborts the whole pass so that the generated
// unit never silently shadows an earlier user law.
//
// A Registry is not safe for concurrent use. Each generation pass owns its
// own instances (one for volume formulas, one for boundary formulas).
package registry
