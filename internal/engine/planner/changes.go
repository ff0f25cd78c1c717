package planner

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// LastPublicationTag returns the newest "{name}/v*" tag of pkg, or "" when the
// package was never published. The result is stored on pkg.
func (p *Planner) LastPublicationTag(ctx context.Context, suite *domain.Suite, pkg *domain.Package) (string, error) {
	tag, err := p.vcs.LastTagMatching(ctx, suite.Root, domain.PublicationTagPattern(pkg.Name))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read publication tags"), "package", pkg.Name)
	}
	pkg.LastPublicationTag = tag
	return tag, nil
}

// HasChangesSincePublication reports whether pkg needs publishing: it was never
// tagged, or its subtree differs from its last publication tag.
func (p *Planner) HasChangesSincePublication(ctx context.Context, suite *domain.Suite, pkg *domain.Package) (bool, error) {
	tag, err := p.LastPublicationTag(ctx, suite, pkg)
	if err != nil {
		return false, err
	}
	if tag == "" {
		return true, nil
	}

	changed, err := p.vcs.HasChangesSince(ctx, suite.Root, tag, pkg.Path)
	if err != nil {
		err = zerr.Wrap(err, "failed to diff against publication tag")
		err = zerr.With(err, "package", pkg.Name)
		return false, zerr.With(err, "tag", tag)
	}
	return changed, nil
}

// PackagesToPublish filters the suite, in suite order, by HasChangesSincePublication.
func (p *Planner) PackagesToPublish(ctx context.Context, suite *domain.Suite) ([]*domain.Package, error) {
	var toPublish []*domain.Package
	for _, pkg := range suite.Packages {
		changed, err := p.HasChangesSincePublication(ctx, suite, pkg)
		if err != nil {
			return nil, err
		}
		if changed {
			toPublish = append(toPublish, pkg)
		}
	}
	return toPublish, nil
}
