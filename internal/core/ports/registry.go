package ports

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
)

// RegistryPublisher uploads a package to its registry.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RegistryPublisher interface {
	Publish(ctx context.Context, pkg *domain.Package) error
}
