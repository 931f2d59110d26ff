// Package casehcl provides the concrete HCL implementation of the case
// loader interface defined in the config package. It parses case definition
// files, validates their blocks and translates them into the format-agnostic
// model consumed by the generation pass.
package casehcl
