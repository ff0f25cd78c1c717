package planner

import (
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildDependencyMap reads every package's declared dependencies and keeps the
// suite-local ones. The raw declarations are stored on the packages.
func (p *Planner) BuildDependencyMap(suite *domain.Suite) (domain.DependencyMap, error) {
	m := make(domain.DependencyMap, len(suite.Packages))
	for _, pkg := range suite.Packages {
		raw, err := p.manifests.ReadDependencies(pkg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read dependencies"), "package", pkg.Name)
		}
		pkg.DeclaredDependencies = domain.Dedupe(raw)
		m[pkg.Name] = suite.FilterLocalPackages(raw)
	}
	return m, nil
}

// Order returns the suite packages in dependency-first order.
func (p *Planner) Order(suite *domain.Suite) ([]*domain.Package, domain.DependencyMap, error) {
	m, err := p.BuildDependencyMap(suite)
	if err != nil {
		return nil, nil, err
	}

	names, err := m.TopologicalOrder()
	if err != nil {
		return nil, nil, err
	}

	ordered := make([]*domain.Package, 0, len(names))
	for _, name := range names {
		if pkg, ok := suite.Package(name); ok {
			ordered = append(ordered, pkg)
		}
	}
	return ordered, m, nil
}

// sortByOrder returns pkgs rearranged to follow order.
func sortByOrder(pkgs []*domain.Package, order []string) []*domain.Package {
	byName := make(map[string]*domain.Package, len(pkgs))
	for _, pkg := range pkgs {
		byName[pkg.Name] = pkg
	}
	sorted := make([]*domain.Package, 0, len(pkgs))
	for _, name := range order {
		if pkg, ok := byName[name]; ok {
			sorted = append(sorted, pkg)
		}
	}
	return sorted
}
