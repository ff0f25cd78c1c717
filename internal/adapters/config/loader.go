// Package config discovers suites and packages on disk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validPackageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Loader implements ports.SuiteLoader.
type Loader struct {
	fs        afero.Fs
	manifests ports.ManifestStore
	logger    ports.Logger
}

var _ ports.SuiteLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(fs afero.Fs, manifests ports.ManifestStore, logger ports.Logger) *Loader {
	return &Loader{fs: fs, manifests: manifests, logger: logger}
}

// Kind tells what dir is: a suite root, a package or neither.
func (l *Loader) Kind(dir string) domain.WorkdirKind {
	if ok, _ := afero.Exists(l.fs, filepath.Join(dir, domain.WorkFileName)); ok {
		return domain.WorkdirSuite
	}
	for _, name := range domain.ManifestFileNames {
		if ok, _ := afero.Exists(l.fs, filepath.Join(dir, name)); ok {
			return domain.WorkdirPackage
		}
	}
	return domain.WorkdirUnknown
}

// LoadSuite finds the work file in cwd or its parents and loads its packages.
func (l *Loader) LoadSuite(cwd string) (*domain.Suite, error) {
	workfilePath, found := l.findWorkfile(cwd)
	if !found {
		return nil, &domain.InvalidWorkdirType{
			Path:         cwd,
			Expected:     domain.WorkdirSuite,
			Actual:       l.Kind(cwd),
			NearestSuite: l.nearestSuiteBelow(cwd),
		}
	}

	var workfile Workfile
	if err := l.readYAML(workfilePath, &workfile); err != nil {
		return nil, err
	}

	root := filepath.Dir(workfilePath)
	paths, err := l.resolvePackagePaths(root, workfile.Packages)
	if err != nil {
		return nil, err
	}

	suite := &domain.Suite{Root: root, Vendor: workfile.Vendor}
	seen := make(map[string]string)
	for _, path := range paths {
		pkg, err := l.loadSuitePackage(root, path)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			continue
		}

		rel, _ := filepath.Rel(root, path)
		if first, exists := seen[pkg.Name]; exists {
			err := zerr.With(zerr.Wrap(domain.ErrDuplicatePackageName, "package names must be unique"), "package", pkg.Name)
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", rel)
		}
		seen[pkg.Name] = rel
		suite.Packages = append(suite.Packages, pkg)
	}
	return suite, nil
}

// LoadPackage loads the package whose manifest lives in dir.
func (l *Loader) LoadPackage(dir string) (*domain.Package, error) {
	m, err := l.manifests.Load(dir)
	if err != nil {
		if errors.Is(err, domain.ErrManifestNotFound) {
			nearest, _ := l.findWorkfile(dir)
			if nearest != "" {
				nearest = filepath.Dir(nearest)
			}
			return nil, &domain.InvalidWorkdirType{
				Path:         dir,
				Expected:     domain.WorkdirPackage,
				Actual:       l.Kind(dir),
				NearestSuite: nearest,
			}
		}
		return nil, err
	}
	return newPackage(dir, m)
}

func (l *Loader) findWorkfile(cwd string) (string, bool) {
	dir := filepath.Clean(cwd)
	for {
		path := filepath.Join(dir, domain.WorkFileName)
		if ok, _ := afero.Exists(l.fs, path); ok {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// nearestSuiteBelow returns the first direct subdirectory of dir holding a work file.
func (l *Loader) nearestSuiteBelow(dir string) string {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(dir, entry.Name())
		if ok, _ := afero.Exists(l.fs, filepath.Join(candidate, domain.WorkFileName)); ok {
			return candidate
		}
	}
	return ""
}

func (l *Loader) resolvePackagePaths(root string, patterns []string) ([]string, error) {
	unique := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := afero.Glob(l.fs, filepath.Join(root, pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "glob pattern failed"), "pattern", pattern)
		}
		for _, match := range matches {
			unique[match] = struct{}{}
		}
	}

	paths := make([]string, 0, len(unique))
	for p := range unique {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}

// loadSuitePackage returns nil, nil for matches that are not package directories.
func (l *Loader) loadSuitePackage(root, path string) (*domain.Package, error) {
	rel, _ := filepath.Rel(root, path)

	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", rel)
	}
	if !info.IsDir() {
		return nil, nil
	}

	m, err := l.manifests.Load(path)
	if errors.Is(err, domain.ErrManifestNotFound) {
		l.logger.Warn(fmt.Sprintf("no package manifest in %s, skipping", rel))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pkg, err := newPackage(path, m)
	if err != nil {
		return nil, zerr.With(err, "directory", rel)
	}
	return pkg, nil
}

func newPackage(dir string, m *domain.Manifest) (*domain.Package, error) {
	if m.Name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingPackageName, "manifest has no name"), "path", m.Path)
	}
	if !validPackageNameRegex.MatchString(m.Name) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidPackageName, "invalid package name"), "package", m.Name)
		return nil, zerr.With(err, "path", m.Path)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	return &domain.Package{
		Name:                 m.Name,
		Version:              m.Version,
		Path:                 abs,
		ManifestPath:         m.Path,
		DeclaredDependencies: domain.Dedupe(m.DependencyNames()),
	}, nil
}

func (l *Loader) readYAML(path string, target any) error {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "work file disappeared"), "path", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return nil
}
