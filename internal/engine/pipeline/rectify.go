package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultLoopLimit bounds the rectify loop when no limit is configured.
const DefaultLoopLimit = 10

// RectifyOptions configures a rectify run.
type RectifyOptions struct {
	Filters domain.ScopeFilters
	// Force bypasses the convergence gate check.
	Force bool
	// DryRun reports planned operations without applying them.
	DryRun bool
	// Loop keeps applying until a pass reports zero operations.
	Loop bool
	// LoopLimit caps the number of passes when Loop is set.
	LoopLimit int
}

// RectifyResult summarizes a rectify run.
type RectifyResult struct {
	Passes int
	// Operations is the total number of operations applied.
	Operations int
	// Planned holds the operations found by a dry run.
	Planned []domain.FileOperation
	// Converged is true when the last pass applied nothing.
	Converged bool
	// Warning is set when the loop limit stopped the run.
	Warning error
}

// Rectifier drives the per-package convergence loop.
type Rectifier struct {
	gate   *Gate
	engine ports.FileStateEngine
	logger ports.Logger
}

// NewRectifier creates a Rectifier.
func NewRectifier(gate *Gate, engine ports.FileStateEngine, logger ports.Logger) *Rectifier {
	return &Rectifier{gate: gate, engine: engine, logger: logger}
}

// Rectify applies pkg's declared file state, pass after pass when looping,
// until a pass performs no operation or the loop limit is reached.
func (r *Rectifier) Rectify(ctx context.Context, pkg *domain.Package, opts RectifyOptions) (*RectifyResult, error) {
	if opts.DryRun {
		return r.dryRun(ctx, pkg, opts.Filters)
	}

	limit := opts.LoopLimit
	if limit <= 0 {
		limit = DefaultLoopLimit
	}

	result := &RectifyResult{}
	for pass := 1; ; pass++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := r.gate.Apply(ctx, pkg, opts.Filters, opts.Force)
		if err != nil {
			return result, err
		}
		result.Passes = pass
		result.Operations += res.Operations

		switch {
		case res.Operations == 0:
			result.Converged = true
			r.logger.Info(fmt.Sprintf("Rectification of %s completed successfully after %d %s.",
				pkg.Name, pass, plural(pass, "pass", "passes")))
			return result, nil
		case !opts.Loop:
			r.logger.Info(fmt.Sprintf("Rectification pass of %s completed; applied %d %s.",
				pkg.Name, res.Operations, plural(res.Operations, "operation", "operations")))
			return result, nil
		case pass >= limit:
			msg := fmt.Sprintf("Loop limit reached (%d/%d); stopping further passes.", pass, limit)
			result.Warning = zerr.With(zerr.Wrap(domain.ErrRectifyLoopLimit, msg), "package", pkg.Name)
			r.logger.Warn(msg)
			return result, nil
		}

		r.logger.Info(fmt.Sprintf("Pass %d completed with %d operation(s); starting pass %d of %d.",
			pass, res.Operations, pass+1, limit))
	}
}

func (r *Rectifier) dryRun(ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters) (*RectifyResult, error) {
	ops, err := r.engine.DryRun(ctx, pkg, filters)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "file-state dry run failed"), "package", pkg.Name)
	}

	if len(ops) == 0 {
		r.logger.Info(fmt.Sprintf("%s is up to date.", pkg.Name))
	}
	for _, op := range ops {
		r.logger.Info(fmt.Sprintf("Would %s %s in %s", op.Kind, op.Path, pkg.Name))
		if diff := strings.TrimRight(op.Diff, "\n"); diff != "" {
			r.logger.Info(diff)
		}
	}
	return &RectifyResult{Planned: ops, Converged: len(ops) == 0}, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
