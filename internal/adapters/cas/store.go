// Package cas persists the convergence registry of each package.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk layout of <pkg>/.ship/registry.yaml.
type registryFile struct {
	FileState struct {
		LastUpdateHash string `yaml:"last_update_hash"`
	} `yaml:"file_state"`
}

// Store implements ports.ConvergenceStore with one YAML file per package.
type Store struct {
	fs afero.Fs
	mu sync.Mutex
}

var _ ports.ConvergenceStore = (*Store)(nil)

// NewStore creates a Store.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Get returns the package's record, or nil, nil if it has no registry yet.
func (s *Store) Get(pkg *domain.Package) (*domain.ConvergenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := registryPath(pkg)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return &domain.ConvergenceRecord{LastUpdateHash: file.FileState.LastUpdateHash}, nil
}

// Put stores record.
func (s *Store) Put(pkg *domain.Package, record domain.ConvergenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file registryFile
	file.FileState.LastUpdateHash = record.LastUpdateHash
	return s.write(registryPath(pkg), &file)
}

// Clear empties the stored hash. A package without registry stays without one.
func (s *Store) Clear(pkg *domain.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := registryPath(pkg)
	if ok, _ := afero.Exists(s.fs, path); !ok {
		return nil
	}
	return s.write(path, &registryFile{})
}

// Lock creates the package's lock file exclusively. The lock is advisory: it
// only keeps concurrent ship invocations away from the same registry.
func (s *Store) Lock(pkg *domain.Package) (func() error, error) {
	path := filepath.Join(pkg.Path, domain.DefaultLockPath())
	if err := s.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			err := zerr.With(zerr.Wrap(domain.ErrRegistryLocked, "registry lock is held"), "package", pkg.Name)
			return nil, zerr.With(err, "lock", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			if rmErr := s.fs.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				err = zerr.With(zerr.Wrap(rmErr, "failed to release registry lock"), "path", path)
			}
		})
		return err
	}, nil
}

func (s *Store) write(path string, file *registryFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", path)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}
	if err := afero.WriteFile(s.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

func registryPath(pkg *domain.Package) string {
	return filepath.Join(pkg.Path, domain.DefaultRegistryPath())
}
