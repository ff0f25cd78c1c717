package ports

import "go.trai.ch/ship/internal/core/domain"

// ManifestStore reads and edits package manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Load decodes the manifest found in dir.
	Load(dir string) (*domain.Manifest, error)
	// ReadDependencies returns the raw dependency names, local or not.
	ReadDependencies(pkg *domain.Package) ([]string, error)
	// ReadVersion returns the version declared in the manifest.
	ReadVersion(pkg *domain.Package) (string, error)
	// WriteVersion stores version in the manifest.
	WriteVersion(pkg *domain.Package, version string) error
	// WritePinnedDependency pins depName to version in pkg's manifest.
	WritePinnedDependency(pkg *domain.Package, depName, version string) error
}
