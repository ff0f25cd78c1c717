// Package filestate reconciles package files against the state their manifest declares.
package filestate

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine implements ports.FileStateEngine.
//
// The target state of a package is its version file holding the manifest
// version, plus every entry of the manifest's files table.
type Engine struct {
	fs        afero.Fs
	manifests ports.ManifestStore
}

var _ ports.FileStateEngine = (*Engine)(nil)

// New creates an Engine.
func New(fs afero.Fs, manifests ports.ManifestStore) *Engine {
	return &Engine{fs: fs, manifests: manifests}
}

// DryRun returns the operations Apply would perform, each with a unified diff.
func (e *Engine) DryRun(
	ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters,
) ([]domain.FileOperation, error) {
	return e.plan(ctx, pkg, filters)
}

// Apply performs the operations selected by filters and returns how many ran.
func (e *Engine) Apply(ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters) (int, error) {
	ops, err := e.plan(ctx, pkg, filters)
	if err != nil {
		return 0, err
	}

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		target := filepath.Join(pkg.Path, filepath.FromSlash(op.Path))
		if err := e.fs.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return i, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
		}
		if err := afero.WriteFile(e.fs, target, []byte(op.Content), domain.FilePerm); err != nil {
			return i, zerr.With(zerr.Wrap(err, "failed to write file"), "path", target)
		}
	}
	return len(ops), nil
}

func (e *Engine) plan(
	ctx context.Context, pkg *domain.Package, filters domain.ScopeFilters,
) ([]domain.FileOperation, error) {
	desired, err := e.desiredState(pkg)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(desired))
	for p := range desired {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	var ops []domain.FileOperation
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if filters.Max > 0 && len(ops) >= filters.Max {
			break
		}
		if !matchPath(filters.Path, rel) {
			continue
		}

		op, changed, err := e.compare(pkg, rel, desired[rel])
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}
		if filters.Operation != "" && op.Kind != filters.Operation {
			continue
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (e *Engine) desiredState(pkg *domain.Package) (map[string]string, error) {
	manifest, err := e.manifests.Load(pkg.Path)
	if err != nil {
		return nil, err
	}

	desired := map[string]string{domain.VersionFileName: manifest.Version + "\n"}
	for rel, content := range manifest.Files {
		clean := path.Clean(filepath.ToSlash(rel))
		if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return nil, zerr.With(zerr.With(zerr.New("declared file escapes the package directory"),
				"package", pkg.Name), "path", rel)
		}
		desired[clean] = content
	}
	return desired, nil
}

func (e *Engine) compare(pkg *domain.Package, rel, want string) (domain.FileOperation, bool, error) {
	target := filepath.Join(pkg.Path, filepath.FromSlash(rel))
	current, err := afero.ReadFile(e.fs, target)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.FileOperation{}, false, zerr.With(zerr.Wrap(err, "failed to read file"), "path", target)
		}
		return domain.FileOperation{
			Kind:    domain.OperationCreate,
			Path:    rel,
			Content: want,
			Diff:    unifiedDiff(rel, "", want),
		}, true, nil
	}

	if string(current) == want {
		return domain.FileOperation{}, false, nil
	}
	return domain.FileOperation{
		Kind:    domain.OperationUpdate,
		Path:    rel,
		Content: want,
		Diff:    unifiedDiff(rel, string(current), want),
	}, true, nil
}

// matchPath reports whether rel is selected by filter, either as a glob or as a path prefix.
func matchPath(filter, rel string) bool {
	if filter == "" {
		return true
	}
	filter = strings.TrimPrefix(filepath.ToSlash(filter), "./")
	if ok, _ := path.Match(filter, rel); ok {
		return true
	}
	prefix := strings.TrimSuffix(filter, "/")
	return rel == prefix || strings.HasPrefix(rel, prefix+"/")
}

func unifiedDiff(rel, from, to string) string {
	var a []string
	if from != "" {
		a = difflib.SplitLines(from)
	}
	text, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        difflib.SplitLines(to),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  3,
	})
	return text
}
