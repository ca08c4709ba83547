package ssaunit

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/sirkon/fragile/internal/fragile"
)

// LoadConfig controls package loading.
type LoadConfig struct {
	Dir    string
	Tests  bool
	Logger *slog.Logger
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedTypesSizes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Load loads packages matching patterns, builds their SSA form and returns
// their source functions.
func Load(ctx context.Context, cfg LoadConfig, patterns ...string) ([]fragile.Function, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	initial, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Tests:   cfg.Tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs int
	packages.Visit(initial, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			log.Error("package error", slog.String("package", p.PkgPath), slog.String("error", e.Error()))
			errs++
		}
	})
	if errs > 0 {
		return nil, fmt.Errorf("load packages: %d errors found", errs)
	}

	prog, pkgs := ssautil.Packages(initial, ssa.InstantiateGenerics)
	prog.Build()

	fns := SourceFunctions(pkgs...)
	log.Info("packages loaded", slog.Int("packages", len(initial)), slog.Int("functions", len(fns)))

	return FromFunctions(fns), nil
}
