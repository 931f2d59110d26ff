// Package assemble wraps classified declarations and translated statements
// into per-formula dispatch blocks and concatenates them, in registry order,
// between the fixed prologue and epilogue of a generated source unit.
package assemble
