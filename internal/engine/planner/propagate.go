package planner

import (
	"fmt"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// PropagatePackage pins pkg's current version in every package declaring it
// as a dependency and returns the updated dependents.
func (p *Planner) PropagatePackage(suite *domain.Suite, m domain.DependencyMap, pkg *domain.Package) ([]string, error) {
	dependents := m.Dependents(pkg.Name)
	for _, name := range dependents {
		dependent, ok := suite.Package(name)
		if !ok {
			continue
		}
		if err := p.manifests.WritePinnedDependency(dependent, pkg.Name, pkg.Version); err != nil {
			err = zerr.Wrap(err, "failed to pin dependency version")
			err = zerr.With(err, "package", dependent.Name)
			return nil, zerr.With(err, "dependency", pkg.Name)
		}
	}
	return dependents, nil
}

// Propagate walks the suite in dependency order and pins every package's
// version in its dependents. It returns the number of manifest updates.
func (p *Planner) Propagate(suite *domain.Suite, m domain.DependencyMap, progress ports.ProgressReporter) (int, error) {
	if progress != nil {
		defer progress.Finish()
	}
	order, err := m.TopologicalOrder()
	if err != nil {
		return 0, err
	}

	var updates int
	for _, name := range order {
		pkg, ok := suite.Package(name)
		if !ok {
			continue
		}
		if progress != nil {
			progress.Advance(1, fmt.Sprintf("Propagating package %q version %q", pkg.Name, pkg.Version))
		}
		dependents, err := p.PropagatePackage(suite, m, pkg)
		if err != nil {
			return updates, err
		}
		updates += len(dependents)
	}
	return updates, nil
}
