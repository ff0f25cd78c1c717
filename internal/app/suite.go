package app

import (
	"context"
	"fmt"
)

// Packages prints the suite packages in dependency order.
func (a *App) Packages(_ context.Context) error {
	s, err := a.open()
	if err != nil {
		return err
	}

	ordered, _, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}
	return RenderPackages(a.out, s.suite.Root, ordered)
}

// Check validates that every import between suite packages follows a declared
// dependency path.
func (a *App) Check(ctx context.Context) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	return a.check(ctx, s)
}

func (a *App) check(ctx context.Context, s *session) error {
	m, err := a.planner.BuildDependencyMap(s.suite)
	if err != nil {
		return err
	}
	if _, err := m.TopologicalOrder(); err != nil {
		return err
	}

	progress := a.progress(len(s.suite.Packages))
	defer progress.Finish()
	err = a.planner.Validate(ctx, s.suite, m, func(importer string) {
		progress.Advance(1, "Checked imports of "+importer)
	})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Internal dependencies of %d package(s) match.", len(s.suite.Packages)))
	return nil
}

// Status prints, per package, the last publication tag and whether the
// package changed since.
func (a *App) Status(ctx context.Context) error {
	s, err := a.open()
	if err != nil {
		return err
	}

	ordered, _, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}

	rows := make([]StatusRow, 0, len(ordered))
	for _, pkg := range ordered {
		changed, err := a.planner.HasChangesSincePublication(ctx, s.suite, pkg)
		if err != nil {
			return err
		}
		rows = append(rows, StatusRow{Package: pkg, Changed: changed})
	}
	return RenderStatus(a.out, rows)
}
