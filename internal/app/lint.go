package app

import (
	"context"
	"log/slog"

	"github.com/vk/megc/internal/config"
	"github.com/vk/megc/internal/ctxlog"
	"github.com/vk/megc/internal/lint"
	"github.com/vk/megc/internal/notebook"
	"github.com/vk/megc/internal/registry"
)

// implicitNames are always visible to formulas regardless of what the case
// declares: time state, element coordinates, and pi.
var implicitNames = []string{"x", "y", "z", "t", "dt", "iter", "pi"}

// lintFormulas runs the advisory pre-check over every registered formula.
// Findings are logged as warnings and never block generation.
func (a *App) lintFormulas(
	ctx context.Context,
	book *notebook.Book,
	volumes *registry.Registry[*config.VolumeFormula],
	boundaries *registry.Registry[*config.BoundaryFormula],
) {
	logger := ctxlog.FromContext(ctx)
	total := 0

	for _, f := range volumes.All() {
		names := append([]string{}, implicitNames...)
		names = append(names, book.Names()...)
		for _, s := range f.Symbols {
			names = append(names, s.Name)
		}
		names = append(names, f.Scalars...)
		names = append(names, f.Required...)
		total += reportIssues(logger, lint.NewChecker(names).Check(f.Key(), f.Expression))
	}

	for _, f := range boundaries.All() {
		names := append([]string{}, implicitNames...)
		names = append(names, book.Names()...)
		names = append(names, f.Required...)
		total += reportIssues(logger, lint.NewChecker(names).Check(f.Key(), f.Expression))
	}

	if total == 0 {
		logger.Debug("Formula pre-check passed with no findings.")
	} else {
		logger.Warn("Formula pre-check finished with findings.", "count", total)
	}
}

func reportIssues(logger *slog.Logger, issues []lint.Issue) int {
	for _, i := range issues {
		logger.Warn("Formula pre-check finding.",
			"formula", i.Key, "line", i.Line, "detail", i.Message)
	}
	return len(issues)
}
