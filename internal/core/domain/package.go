// Package domain contains the core release models: packages, suites, the dependency map and release plans.
package domain

import "slices"

// Package is one independently publishable unit of a suite.
type Package struct {
	// Name is unique within the suite.
	Name string
	// Version is a semantic version string without a leading "v".
	Version string
	// Path is the absolute directory of the package.
	Path string
	// ManifestPath is the absolute path of the manifest the package was read from.
	ManifestPath string
	// DeclaredDependencies holds the raw dependency names found in the manifest,
	// deduplicated with first occurrence winning. Entries may be external.
	DeclaredDependencies []string
	// LastPublicationTag is the newest tag matching "{name}/v*", or "" if the
	// package has never been published.
	LastPublicationTag string
}

// PublicationTag returns the tag marking the package's current version as published.
func (p *Package) PublicationTag() string {
	return PublicationTag(p.Name, p.Version)
}

// Suite is an ordered collection of packages sharing one repository.
type Suite struct {
	Root     string
	Vendor   string
	Packages []*Package
}

// Package looks up a package by name.
func (s *Suite) Package(name string) (*Package, bool) {
	for _, p := range s.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// FilterLocalPackages keeps only the names that belong to the suite.
// Order is preserved and duplicates are dropped, the first occurrence winning.
func (s *Suite) FilterLocalPackages(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}

	local := make(map[string]struct{}, len(s.Packages))
	for _, p := range s.Packages {
		local[p.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(names))
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := local[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		filtered = append(filtered, name)
	}
	return filtered
}

// Select returns the packages with the given names, in suite order.
// Unknown names are reported as ErrPackageNotFound.
func (s *Suite) Select(names []string) ([]*Package, error) {
	for _, name := range names {
		if _, ok := s.Package(name); !ok {
			return nil, packageNotFound(name)
		}
	}
	selected := make([]*Package, 0, len(names))
	for _, p := range s.Packages {
		if slices.Contains(names, p.Name) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// Dedupe removes duplicate names, keeping the first occurrence.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
