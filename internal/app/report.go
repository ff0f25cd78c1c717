package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	"go.trai.ch/ship/internal/core/domain"
)

const columnSeparator = "  "

// StatusRow is one line of the status table.
type StatusRow struct {
	Package *domain.Package
	Changed bool
}

// PlanRow is one line of a dry-run publish plan.
type PlanRow struct {
	Package *domain.Package
	Next    string
}

func newTable(header ...any) *uitable.Table {
	table := uitable.New()
	table.Separator = columnSeparator
	table.MaxColWidth = 80
	table.AddRow(header...)
	return table
}

// write prints table without the padding uitable leaves after the last column.
func write(w io.Writer, table *uitable.Table) error {
	lines := strings.Split(table.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderPackages prints name, version and path relative to root for each package.
func RenderPackages(w io.Writer, root string, pkgs []*domain.Package) error {
	table := newTable("PACKAGE", "VERSION", "PATH")
	for _, pkg := range pkgs {
		rel, err := filepath.Rel(root, pkg.Path)
		if err != nil {
			rel = pkg.Path
		}
		table.AddRow(pkg.Name, pkg.Version, filepath.ToSlash(rel))
	}
	return write(w, table)
}

// RenderStatus prints the publication state of each package.
func RenderStatus(w io.Writer, rows []StatusRow) error {
	table := newTable("PACKAGE", "VERSION", "LAST TAG", "CHANGED")
	for _, row := range rows {
		tag := row.Package.LastPublicationTag
		if tag == "" {
			tag = "-"
		}
		changed := "no"
		if row.Changed {
			changed = "yes"
		}
		table.AddRow(row.Package.Name, row.Package.Version, tag, changed)
	}
	return write(w, table)
}

// RenderPlan prints the packages a publish would release.
func RenderPlan(w io.Writer, rows []PlanRow) error {
	table := newTable("#", "PACKAGE", "VERSION", "NEXT", "TAG")
	for i, row := range rows {
		table.AddRow(i+1, row.Package.Name, row.Package.Version, row.Next,
			domain.PublicationTag(row.Package.Name, row.Next))
	}
	return write(w, table)
}

// RenderReport prints the status of steps for every package of plan, then the
// warnings collected during the run.
func RenderReport(w io.Writer, plan *domain.ReleasePlan, steps []domain.Step) error {
	header := []any{"PACKAGE", "VERSION"}
	for _, step := range steps {
		header = append(header, strings.ToUpper(step.String()))
	}
	table := newTable(header...)

	for _, item := range plan.Items {
		version := item.FromVersion
		if item.Package.Version != item.FromVersion {
			version += " -> " + item.Package.Version
		}
		row := []any{item.Package.Name, version}
		for _, step := range steps {
			row = append(row, string(item.Status(step)))
		}
		table.AddRow(row...)
	}
	if err := write(w, table); err != nil {
		return err
	}

	if len(plan.Warnings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nWarnings:"); err != nil {
		return err
	}
	for _, warning := range plan.Warnings {
		if _, err := fmt.Fprintf(w, "  - %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}
