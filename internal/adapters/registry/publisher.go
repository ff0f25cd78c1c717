// Package registry uploads packages by running their declared publish command.
package registry

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publisher implements ports.RegistryPublisher.
type Publisher struct {
	manifests ports.ManifestStore
	runner    ports.CommandRunner
}

var _ ports.RegistryPublisher = (*Publisher)(nil)

// NewPublisher creates a Publisher.
func NewPublisher(manifests ports.ManifestStore, runner ports.CommandRunner) *Publisher {
	return &Publisher{manifests: manifests, runner: runner}
}

// Publish runs the package's publish command in its directory. The command
// receives the package name and version through SHIP_PACKAGE and SHIP_VERSION.
func (p *Publisher) Publish(ctx context.Context, pkg *domain.Package) error {
	manifest, err := p.manifests.Load(pkg.Path)
	if err != nil {
		return err
	}
	if len(manifest.Publish) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrPublishCommandMissing, "cannot publish"), "package", pkg.Name)
	}

	cmd := &domain.Command{
		Dir:  pkg.Path,
		Args: manifest.Publish,
		Env: map[string]string{
			"SHIP_PACKAGE": pkg.Name,
			"SHIP_VERSION": manifest.Version,
		},
	}
	if err := p.runner.Run(ctx, cmd, nil); err != nil {
		return zerr.With(zerr.Wrap(err, "publish command failed"), "package", pkg.Name)
	}
	return nil
}
