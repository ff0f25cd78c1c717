package ports

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
)

// SourceScanner finds references from one package's sources to another package.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// FindImportsOf returns every location in importer's tree referencing target's namespace.
	FindImportsOf(ctx context.Context, importer, target *domain.Package) ([]domain.ImportLocation, error)
}
