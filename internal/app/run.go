package app

import (
	"context"
	"fmt"

	"github.com/vk/megc/internal/assemble"
	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/ctxlog"
	"github.com/vk/megc/internal/notebook"
	"github.com/vk/megc/internal/registry"
	"github.com/vk/megc/internal/variant"
)

// Run executes the generation pipeline: load the case, register every
// formula, optionally lint, render both source units and write them, then
// optionally run the solver's compile test against the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	pkg, err := variant.Parse(a.cfg.Package)
	if err != nil {
		return err
	}

	model, err := a.loader.Load(ctx, a.cfg.CasePath)
	if err != nil {
		return fmt.Errorf("failed to load case definition: %w", err)
	}
	a.logger.Debug("Case definition loaded into unified model.",
		"volume_formulas", len(model.VolumeFormulas),
		"boundary_formulas", len(model.BoundaryFormulas),
	)

	book, err := a.buildNotebook(model)
	if err != nil {
		return err
	}

	volumes, boundaries, err := buildRegistries(model)
	if err != nil {
		return err
	}

	if a.cfg.Lint {
		a.lintFormulas(ctx, book, volumes, boundaries)
	}

	asm := assemble.New(pkg, book)
	volumeCode, err := asm.VolumeUnit(volumes)
	if err != nil {
		return err
	}
	boundaryCode, err := asm.BoundaryUnit(boundaries)
	if err != nil {
		return err
	}

	// One failed write must not stop the other unit from being refreshed.
	statuses := []assemble.WriteStatus{
		assemble.WriteUnit(ctx, a.cfg.OutputDir, assemble.VolumeFileName, volumeCode),
		assemble.WriteUnit(ctx, a.cfg.OutputDir, assemble.BoundaryFileName, boundaryCode),
	}
	var written []string
	for i, name := range []string{assemble.VolumeFileName, assemble.BoundaryFileName} {
		switch statuses[i] {
		case assemble.StatusFailed:
			err = fmt.Errorf("failed to write generated unit %s", name)
		case assemble.StatusWritten:
			written = append(written, name)
		}
	}
	if err != nil {
		return err
	}

	if a.cfg.Check && len(written) > 0 {
		if err := a.runCompileCheck(ctx, written); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildNotebook layers the standalone notebook file, when configured, over
// the parameters declared inline in the case definition.
func (a *App) buildNotebook(model *config.Model) (*notebook.Book, error) {
	book := notebook.New()
	for _, p := range model.Notebook {
		book.Add(p.Name, p.Value)
	}
	if a.cfg.NotebookPath != "" {
		file, err := notebook.LoadFile(a.cfg.NotebookPath)
		if err != nil {
			return nil, err
		}
		book.Merge(file)
	}
	return book, nil
}

// buildRegistries registers every formula of the model, rejecting duplicate
// definitions for the same entity and zone.
func buildRegistries(model *config.Model) (
	*registry.Registry[*config.VolumeFormula],
	*registry.Registry[*config.BoundaryFormula],
	error,
) {
	volumes := registry.New[*config.VolumeFormula]()
	for _, f := range model.VolumeFormulas {
		if err := volumes.Register(f); err != nil {
			return nil, nil, fmt.Errorf("case definition: %w", err)
		}
	}
	boundaries := registry.New[*config.BoundaryFormula]()
	for _, f := range model.BoundaryFormulas {
		if err := boundaries.Register(f); err != nil {
			return nil, nil, fmt.Errorf("case definition: %w", err)
		}
	}
	return volumes, boundaries, nil
}
