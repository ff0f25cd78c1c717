package ports

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
)

// FileStateEngine reconciles a package's files against their declared state.
//
//go:generate mockgen -source=filestate.go -destination=mocks/mock_filestate.go -package=mocks
type FileStateEngine interface {
	// Apply performs the operations selected by filters and returns how many ran.
	Apply(ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters) (int, error)
	// DryRun returns the operations Apply would perform without mutating anything.
	DryRun(ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters) ([]domain.FileOperation, error)
}
