// Package translate rewrites the lines of a user formula into C statements.
//
// The work is split into three stages: a scanner that breaks lines into
// syntactic atoms, a statement parser that produces a small per-line
// intermediate representation (assignment, conditional, expression nodes),
// and an emitter that renders the representation with brace-consistent
// indentation. Splitting parsing from emission keeps brace placement and
// comment rewriting unambiguous and lets the two halves be tested on their
// own.
//
// Only a single level of if/else is supported; nested conditionals are out
// of scope for the formula language.
package translate
