// Package manifest reads and edits package manifests. Three formats are
// supported: ship.yaml, pyproject.toml and ship.hcl.
package manifest

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// format decodes and edits one manifest syntax. Edits take and return the
// whole file so each format can preserve what it is able to.
type format interface {
	decode(path string, data []byte) (*domain.Manifest, error)
	setVersion(path string, data []byte, version string) ([]byte, error)
	setDependency(path string, data []byte, dep, version string) ([]byte, error)
}

var formats = map[string]format{
	domain.ManifestFileName:    yamlFormat{},
	domain.PyprojectFileName:   tomlFormat{},
	domain.HCLManifestFileName: hclFormat{},
}

// Store implements ports.ManifestStore over an afero filesystem.
type Store struct {
	fs afero.Fs
}

var _ ports.ManifestStore = (*Store)(nil)

// NewStore creates a Store.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Find returns the path of the first supported manifest in dir.
func (s *Store) Find(dir string) (string, error) {
	for _, name := range domain.ManifestFileNames {
		path := filepath.Join(dir, name)
		ok, err := afero.Exists(s.fs, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
		}
		if ok {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no supported manifest"), "dir", dir)
}

// Load decodes the manifest found in dir.
func (s *Store) Load(dir string) (*domain.Manifest, error) {
	path, err := s.Find(dir)
	if err != nil {
		return nil, err
	}
	return s.read(path)
}

// ReadDependencies returns the dependency names declared by pkg, pins stripped.
func (s *Store) ReadDependencies(pkg *domain.Package) ([]string, error) {
	m, err := s.load(pkg)
	if err != nil {
		return nil, err
	}
	return m.DependencyNames(), nil
}

// ReadVersion returns the version declared by pkg.
func (s *Store) ReadVersion(pkg *domain.Package) (string, error) {
	m, err := s.load(pkg)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// WriteVersion stores version in pkg's manifest and in its version.txt, when
// the package has one.
func (s *Store) WriteVersion(pkg *domain.Package, version string) error {
	err := s.edit(pkg, func(f format, path string, data []byte) ([]byte, error) {
		return f.setVersion(path, data, version)
	})
	if err != nil {
		return err
	}

	versionFile := filepath.Join(pkg.Path, domain.VersionFileName)
	if ok, _ := afero.Exists(s.fs, versionFile); ok {
		if err := afero.WriteFile(s.fs, versionFile, []byte(version+"\n"), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", versionFile)
		}
	}
	pkg.Version = version
	return nil
}

// WritePinnedDependency pins depName to version in pkg's manifest. An
// existing entry for depName is replaced; otherwise a pinned entry is added.
func (s *Store) WritePinnedDependency(pkg *domain.Package, depName, version string) error {
	return s.edit(pkg, func(f format, path string, data []byte) ([]byte, error) {
		return f.setDependency(path, data, depName, version)
	})
}

func (s *Store) manifestPath(pkg *domain.Package) (string, error) {
	if pkg.ManifestPath != "" {
		return pkg.ManifestPath, nil
	}
	path, err := s.Find(pkg.Path)
	if err != nil {
		return "", zerr.With(err, "package", pkg.Name)
	}
	pkg.ManifestPath = path
	return path, nil
}

func (s *Store) load(pkg *domain.Package) (*domain.Manifest, error) {
	path, err := s.manifestPath(pkg)
	if err != nil {
		return nil, err
	}
	return s.read(path)
}

func (s *Store) read(path string) (*domain.Manifest, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	m, err := f.decode(path, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	m.Path = path
	return m, nil
}

func (s *Store) edit(pkg *domain.Package, change func(f format, path string, data []byte) ([]byte, error)) error {
	path, err := s.manifestPath(pkg)
	if err != nil {
		return err
	}
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	updated, err := change(f, path, data)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if err := afero.WriteFile(s.fs, path, updated, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

func formatOf(path string) (format, error) {
	f, ok := formats[filepath.Base(path)]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "unsupported manifest"), "path", path)
	}
	return f, nil
}

// pinnedEntries replaces the entry naming dep with pinned, or appends it.
func pinnedEntries(entries []string, dep, pinned string) []string {
	out := make([]string, 0, len(entries)+1)
	found := false
	for _, entry := range entries {
		if domain.DependencyName(entry) == dep {
			if !found {
				out = append(out, pinned)
				found = true
			}
			continue
		}
		out = append(out, entry)
	}
	if !found {
		out = append(out, pinned)
	}
	return out
}
