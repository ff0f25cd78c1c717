package ports

import "go.trai.ch/ship/internal/core/domain"

// ConvergenceStore persists the convergence record of each package.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ConvergenceStore interface {
	// Get returns the stored record, or nil, nil if none exists.
	Get(pkg *domain.Package) (*domain.ConvergenceRecord, error)
	// Put stores the record.
	Put(pkg *domain.Package, record domain.ConvergenceRecord) error
	// Clear removes the stored hash.
	Clear(pkg *domain.Package) error
	// Lock takes the advisory lock on the package's registry. The returned
	// function releases it.
	Lock(pkg *domain.Package) (func() error, error)
}
