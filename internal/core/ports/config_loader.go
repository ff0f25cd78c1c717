package ports

import "go.trai.ch/ship/internal/core/domain"

// SuiteLoader discovers suites and packages from the filesystem.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SuiteLoader interface {
	// LoadSuite walks up from cwd to the suite work file and loads every package.
	LoadSuite(cwd string) (*domain.Suite, error)
	// LoadPackage loads the package whose manifest lives in dir.
	LoadPackage(dir string) (*domain.Package, error)
}
