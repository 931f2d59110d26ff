package casehcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/ctxlog"
	"github.com/vk/megc/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL case loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the case loading process. It is agnostic to the origin of
// the paths and accepts any mix of case directories and individual files;
// blocks from every discovered file are merged into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL case loader started.", "path_count", len(paths))

	files, err := fsutil.FindByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered case files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse case file %s: %w", file, diags)
		}

		var root caseFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode case file %s: %w", file, diags)
		}

		for _, vf := range root.VolumeFormulas {
			def, err := translateVolumeFormula(vf)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.VolumeFormulas = append(model.VolumeFormulas, def)
		}
		for _, bf := range root.BoundaryFormulas {
			def, err := translateBoundaryFormula(bf)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.BoundaryFormulas = append(model.BoundaryFormulas, def)
		}
		for _, nb := range root.Notebook {
			def, err := translateNotebookParameter(nb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Notebook = append(model.Notebook, def)
		}
	}

	logger.Debug("Case loading complete.",
		"volume_formulas", len(model.VolumeFormulas),
		"boundary_formulas", len(model.BoundaryFormulas),
		"notebook_parameters", len(model.Notebook),
	)
	return model, nil
}
