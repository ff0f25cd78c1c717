package manifest_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/manifest"
	"go.trai.ch/ship/internal/core/domain"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

const shipYAML = `# core library
name: core
version: 1.0.0
dependencies:
  - base@0.9.0
  - requests
publish:
  - twine
  - upload
  - dist/*
files:
  README.md: |
    # core
`

func TestStore_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/core/ship.yaml", shipYAML)
	store := manifest.NewStore(fs)

	m, err := store.Load("/suite/core")
	require.NoError(t, err)
	assert.Equal(t, "/suite/core/ship.yaml", m.Path)
	assert.Equal(t, "core", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, []string{"base@0.9.0", "requests"}, m.Dependencies)
	assert.Equal(t, []string{"twine", "upload", "dist/*"}, m.Publish)
	assert.Equal(t, map[string]string{"README.md": "# core\n"}, m.Files)

	pkg := &domain.Package{Name: "core", Path: "/suite/core"}
	deps, err := store.ReadDependencies(pkg)
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "requests"}, deps)
	assert.Equal(t, "/suite/core/ship.yaml", pkg.ManifestPath)
}

func TestStore_YAML_WriteVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/core/ship.yaml", shipYAML)
	writeFile(t, fs, "/suite/core/version.txt", "1.0.0\n")
	store := manifest.NewStore(fs)
	pkg := &domain.Package{Name: "core", Version: "1.0.0", Path: "/suite/core"}

	require.NoError(t, store.WriteVersion(pkg, "1.0.1"))

	assert.Equal(t, "1.0.1", pkg.Version)
	version, err := store.ReadVersion(pkg)
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", version)
	assert.Equal(t, "1.0.1\n", readFile(t, fs, "/suite/core/version.txt"))

	content := readFile(t, fs, "/suite/core/ship.yaml")
	assert.Contains(t, content, "# core library")
	assert.Contains(t, content, "version: 1.0.1")
}

func TestStore_WriteVersion_WithoutVersionFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/core/ship.yaml", "name: core\nversion: 1.0.0\n")
	store := manifest.NewStore(fs)

	require.NoError(t, store.WriteVersion(&domain.Package{Name: "core", Path: "/suite/core"}, "2.0.0"))

	exists, err := afero.Exists(fs, "/suite/core/version.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_WritePinnedDependency(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		dep      string
		wantDeps []string
	}{
		{
			name:     "yaml replaces existing entry",
			file:     "ship.yaml",
			content:  shipYAML,
			dep:      "base",
			wantDeps: []string{"base@1.2.0", "requests"},
		},
		{
			name:     "yaml appends missing entry",
			file:     "ship.yaml",
			content:  "name: app\nversion: 0.1.0\n",
			dep:      "base",
			wantDeps: []string{"base@1.2.0"},
		},
		{
			name: "toml uses pep 508 pins",
			file: "pyproject.toml",
			content: `[project]
name = "app"
version = "0.1.0"
dependencies = ["base>=1.0", "requests"]
`,
			dep:      "base",
			wantDeps: []string{"base==1.2.0", "requests"},
		},
		{
			name: "hcl",
			file: "ship.hcl",
			content: `name         = "app"
version      = "0.1.0"
dependencies = ["requests"]
`,
			dep:      "base",
			wantDeps: []string{"requests", "base@1.2.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "/suite/app/"+tt.file, tt.content)
			store := manifest.NewStore(fs)
			pkg := &domain.Package{Name: "app", Path: "/suite/app"}

			require.NoError(t, store.WritePinnedDependency(pkg, tt.dep, "1.2.0"))

			m, err := store.Load("/suite/app")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeps, m.Dependencies)
		})
	}
}

func TestStore_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/py/pyproject.toml", `[project]
name = "py-lib"
version = "0.3.0"
dependencies = ["core==1.0.0", "pyyaml"]

[tool.ship]
publish = ["twine", "upload", "dist/*"]

[tool.ship.files]
"py.typed" = ""
`)
	store := manifest.NewStore(fs)

	m, err := store.Load("/suite/py")
	require.NoError(t, err)
	assert.Equal(t, "py-lib", m.Name)
	assert.Equal(t, "0.3.0", m.Version)
	assert.Equal(t, []string{"core", "pyyaml"}, m.DependencyNames())
	assert.Equal(t, []string{"twine", "upload", "dist/*"}, m.Publish)
	assert.Equal(t, map[string]string{"py.typed": ""}, m.Files)

	pkg := &domain.Package{Name: "py-lib", Path: "/suite/py"}
	require.NoError(t, store.WriteVersion(pkg, "0.4.0"))
	version, err := store.ReadVersion(pkg)
	require.NoError(t, err)
	assert.Equal(t, "0.4.0", version)
}

func TestStore_HCL(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/infra/ship.hcl", `# infrastructure module
name    = "infra"
version = "2.1.0"

dependencies = ["core@1.0.0"]
publish      = ["make", "release"]

files = {
  "VERSION.md" = "infra"
}
`)
	store := manifest.NewStore(fs)

	m, err := store.Load("/suite/infra")
	require.NoError(t, err)
	assert.Equal(t, "infra", m.Name)
	assert.Equal(t, []string{"core"}, m.DependencyNames())
	assert.Equal(t, []string{"make", "release"}, m.Publish)
	assert.Equal(t, map[string]string{"VERSION.md": "infra"}, m.Files)

	pkg := &domain.Package{Name: "infra", Path: "/suite/infra"}
	require.NoError(t, store.WriteVersion(pkg, "2.2.0"))

	content := readFile(t, fs, "/suite/infra/ship.hcl")
	assert.Contains(t, content, "# infrastructure module")
	assert.Contains(t, content, `"2.2.0"`)
}

func TestStore_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/suite/broken/ship.yaml", "name: [unclosed\n")
	require.NoError(t, fs.MkdirAll("/suite/empty", domain.DirPerm))
	store := manifest.NewStore(fs)

	_, err := store.Load("/suite/empty")
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)

	_, err = store.Load("/suite/broken")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())

	_, err = store.ReadVersion(&domain.Package{Name: "ghost", Path: "/suite/ghost"})
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}
