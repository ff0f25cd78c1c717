package planner

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate checks every (importer, candidate) pair of the suite: when the
// importer's sources reference the candidate, a declared dependency path from
// importer to candidate must exist in m. The first undeclared use is returned
// as a *domain.DependencyViolation. onImporter, when set, is called once per
// importer processed.
func (p *Planner) Validate(
	ctx context.Context,
	suite *domain.Suite,
	m domain.DependencyMap,
	onImporter func(importer string),
) error {
	for _, importer := range suite.Packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, candidate := range suite.Packages {
			if candidate.Name == importer.Name {
				continue
			}

			locations, err := p.scanner.FindImportsOf(ctx, importer, candidate)
			if err != nil {
				err = zerr.Wrap(err, "failed to scan sources")
				err = zerr.With(err, "importer", importer.Name)
				return zerr.With(err, "imported", candidate.Name)
			}
			if len(locations) == 0 {
				continue
			}

			if !m.HasPath(importer.Name, candidate.Name) {
				return domain.NewDependencyViolation(importer.Name, candidate.Name, locations)
			}
		}

		if onImporter != nil {
			onImporter(importer.Name)
		}
	}
	return nil
}
