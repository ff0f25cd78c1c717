package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// GateResult is the outcome of one gated apply.
type GateResult struct {
	// Operations is the number of operations the apply performed.
	Operations int
	// Skipped is true when the stored state hash matched and apply was not called.
	Skipped bool
}

// Gate skips file-state passes on packages whose on-disk state has not
// changed since the last full pass.
type Gate struct {
	engine ports.FileStateEngine
	store  ports.ConvergenceStore
	hasher ports.StateHasher
	logger ports.Logger
}

// NewGate creates a Gate.
func NewGate(
	engine ports.FileStateEngine,
	store ports.ConvergenceStore,
	hasher ports.StateHasher,
	logger ports.Logger,
) *Gate {
	return &Gate{engine: engine, store: store, hasher: hasher, logger: logger}
}

// Apply runs one file-state pass on pkg.
//
// Scoped passes (any filter set) bypass the registry: a full-state hash cannot
// describe a partial outcome. Unscoped passes hold the registry lock, skip the
// apply when the stored hash equals the current state hash, and otherwise clear
// the stored hash, apply, and record the resulting state hash. force never
// skips but still records.
func (g *Gate) Apply(
	ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters, force bool,
) (result GateResult, err error) {
	if !filters.IsZero() {
		n, err := g.engine.Apply(ctx, pkg, filters)
		if err != nil {
			return GateResult{}, zerr.With(zerr.Wrap(err, "file-state apply failed"), "package", pkg.Name)
		}
		return GateResult{Operations: n}, nil
	}

	release, err := g.store.Lock(pkg)
	if err != nil {
		return GateResult{}, err
	}
	defer func() {
		if releaseErr := release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	if !force {
		unchanged, err := g.unchanged(pkg)
		if err != nil {
			return GateResult{}, err
		}
		if unchanged {
			g.logger.Info(fmt.Sprintf("No change in %s since last pass, skipping.", pkg.Name))
			return GateResult{Skipped: true}, nil
		}
	}

	if err := g.store.Clear(pkg); err != nil {
		return GateResult{}, err
	}

	n, err := g.engine.Apply(ctx, pkg, filters)
	if err != nil {
		return GateResult{}, zerr.With(zerr.Wrap(err, "file-state apply failed"), "package", pkg.Name)
	}

	hash, err := g.hasher.ComputeStateHash(pkg.Path)
	if err != nil {
		return GateResult{}, zerr.With(err, "package", pkg.Name)
	}
	if err := g.store.Put(pkg, domain.ConvergenceRecord{LastUpdateHash: hash}); err != nil {
		return GateResult{}, err
	}
	return GateResult{Operations: n}, nil
}

func (g *Gate) unchanged(pkg *domain.Package) (bool, error) {
	record, err := g.store.Get(pkg)
	if err != nil {
		return false, err
	}
	if record == nil || record.LastUpdateHash == "" {
		return false, nil
	}

	current, err := g.hasher.ComputeStateHash(pkg.Path)
	if err != nil {
		return false, zerr.With(err, "package", pkg.Name)
	}
	return current == record.LastUpdateHash, nil
}
