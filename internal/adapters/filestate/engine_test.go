package filestate_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/filestate"
	"go.trai.ch/ship/internal/adapters/manifest"
	"go.trai.ch/ship/internal/core/domain"
)

const coreManifest = `name: core
version: 1.2.0
files:
  README.md: |
    # core
  docs/usage.md: |
    usage
`

func setup(t *testing.T) (afero.Fs, *filestate.Engine, *domain.Package) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/suite/core/ship.yaml", []byte(coreManifest), domain.FilePerm))
	require.NoError(t, afero.WriteFile(fs, "/suite/core/version.txt", []byte("1.1.0\n"), domain.FilePerm))
	engine := filestate.New(fs, manifest.NewStore(fs))
	return fs, engine, &domain.Package{Name: "core", Path: "/suite/core"}
}

func TestEngine_DryRun(t *testing.T) {
	fs, engine, pkg := setup(t)

	ops, err := engine.DryRun(context.Background(), pkg, domain.ScopeFilters{})
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, domain.OperationCreate, ops[0].Kind)
	assert.Equal(t, "README.md", ops[0].Path)
	assert.Contains(t, ops[0].Diff, "+# core\n")

	assert.Equal(t, domain.OperationCreate, ops[1].Kind)
	assert.Equal(t, "docs/usage.md", ops[1].Path)

	assert.Equal(t, domain.OperationUpdate, ops[2].Kind)
	assert.Equal(t, "version.txt", ops[2].Path)
	assert.Equal(t, "1.2.0\n", ops[2].Content)
	assert.Contains(t, ops[2].Diff, "--- a/version.txt\n+++ b/version.txt\n")
	assert.Contains(t, ops[2].Diff, "-1.1.0\n+1.2.0\n")

	exists, err := afero.Exists(fs, "/suite/core/README.md")
	require.NoError(t, err)
	assert.False(t, exists, "dry run must not write")
}

func TestEngine_Apply(t *testing.T) {
	fs, engine, pkg := setup(t)
	ctx := context.Background()

	n, err := engine.Apply(ctx, pkg, domain.ScopeFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := afero.ReadFile(fs, "/suite/core/docs/usage.md")
	require.NoError(t, err)
	assert.Equal(t, "usage\n", string(data))

	data, err = afero.ReadFile(fs, "/suite/core/version.txt")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0\n", string(data))

	n, err = engine.Apply(ctx, pkg, domain.ScopeFilters{})
	require.NoError(t, err)
	assert.Zero(t, n, "a second pass finds nothing to do")
}

func TestEngine_Filters(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.ScopeFilters
		want    []string
	}{
		{name: "glob", filters: domain.ScopeFilters{Path: "*.md"}, want: []string{"README.md"}},
		{name: "prefix", filters: domain.ScopeFilters{Path: "docs/"}, want: []string{"docs/usage.md"}},
		{name: "dot prefix", filters: domain.ScopeFilters{Path: "./version.txt"}, want: []string{"version.txt"}},
		{
			name:    "operation",
			filters: domain.ScopeFilters{Operation: domain.OperationCreate},
			want:    []string{"README.md", "docs/usage.md"},
		},
		{
			name:    "update only",
			filters: domain.ScopeFilters{Operation: domain.OperationUpdate},
			want:    []string{"version.txt"},
		},
		{name: "max", filters: domain.ScopeFilters{Max: 2}, want: []string{"README.md", "docs/usage.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, engine, pkg := setup(t)
			ops, err := engine.DryRun(context.Background(), pkg, tt.filters)
			require.NoError(t, err)

			paths := make([]string, 0, len(ops))
			for _, op := range ops {
				paths = append(paths, op.Path)
			}
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestEngine_EscapingPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/suite/core/ship.yaml",
		[]byte("name: core\nversion: 1.0.0\nfiles:\n  ../web/x: y\n"), domain.FilePerm))
	engine := filestate.New(fs, manifest.NewStore(fs))

	_, err := engine.DryRun(context.Background(), &domain.Package{Name: "core", Path: "/suite/core"}, domain.ScopeFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the package directory")
}

func TestEngine_Apply_Cancelled(t *testing.T) {
	_, engine, pkg := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Apply(ctx, pkg, domain.ScopeFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}
