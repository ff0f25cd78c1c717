package planner

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/ship/internal/core/domain"
)

// Stabilization is the outcome of the publish-set fixed point.
type Stabilization struct {
	// ToPublish holds the packages to release, dependency-first.
	ToPublish []*domain.Package
	// Map is the dependency map of the last iteration.
	Map domain.DependencyMap
	// Order is the topological order of the whole suite.
	Order []string
	// Iterations counts the recomputation loops performed.
	Iterations int
	// Converged is false when maxLoops ran out first.
	Converged bool
	// Warning is set when the plan did not converge.
	Warning error
}

// Stabilize recomputes the publish set until it stops changing, at most
// maxLoops times. Each iteration rebuilds the dependency map, validates
// declarations, propagates versions and recomputes the set. Running out of
// loops is not an error: the last set is used and a
// *domain.StabilizationNonConvergence warning is attached and logged.
func (p *Planner) Stabilize(ctx context.Context, suite *domain.Suite, maxLoops int) (*Stabilization, error) {
	if maxLoops <= 0 {
		maxLoops = DefaultMaxLoops
	}

	candidate, err := p.PackagesToPublish(ctx, suite)
	if err != nil {
		return nil, err
	}
	previous := names(candidate)

	result := &Stabilization{}
	for i := 1; i <= maxLoops; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Iterations = i

		m, err := p.BuildDependencyMap(suite)
		if err != nil {
			return nil, err
		}
		order, err := m.TopologicalOrder()
		if err != nil {
			return nil, err
		}
		if err := p.Validate(ctx, suite, m, nil); err != nil {
			return nil, err
		}
		if _, err := p.Propagate(suite, m, nil); err != nil {
			return nil, err
		}

		current, err := p.PackagesToPublish(ctx, suite)
		if err != nil {
			return nil, err
		}

		result.Map = m
		result.Order = order
		result.ToPublish = sortByOrder(current, order)

		currentNames := names(current)
		if sameSet(previous, currentNames) {
			result.Converged = true
			p.logger.Info(fmt.Sprintf("Publish plan stable after %d loop(s): %d package(s) to publish", i, len(current)))
			return result, nil
		}
		previous = currentNames
	}

	warning := &domain.StabilizationNonConvergence{MaxLoops: maxLoops, Last: names(result.ToPublish)}
	result.Warning = warning
	p.logger.Warn(warning.Error())
	return result, nil
}

func names(pkgs []*domain.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, pkg.Name)
	}
	return out
}

// sameSet compares two name lists ignoring order.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}
