// Package config defines the format-agnostic case model for the generator,
// along with the Loader interface for reading a case from various sources.
//
// The config.Model is the single source of truth for the registry and
// assembler packages. Concrete loader implementations, such as for HCL, are
// provided in separate packages.
package config
