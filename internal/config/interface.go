package config

import (
	"context"
)

// Loader is the interface for a format-specific case loader. Load reads the
// case definition from the given paths and translates it into the
// format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
