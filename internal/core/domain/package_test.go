package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
)

func newSuite(names ...string) *domain.Suite {
	s := &domain.Suite{Root: "/suite"}
	for _, n := range names {
		s.Packages = append(s.Packages, &domain.Package{Name: n, Version: "1.0.0", Path: "/suite/" + n})
	}
	return s
}

func TestSuite_FilterLocalPackages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		suite *domain.Suite
		in    []string
		want  []string
	}{
		{
			name:  "dedupes, keeps order, drops externals",
			suite: newSuite("x", "y"),
			in:    []string{"x", "y", "x", "z"},
			want:  []string{"x", "y"},
		},
		{
			name:  "first occurrence wins",
			suite: newSuite("a", "b", "c"),
			in:    []string{"c", "requests", "a", "c", "b"},
			want:  []string{"c", "a", "b"},
		},
		{
			name:  "nil input",
			suite: newSuite("a"),
			in:    nil,
			want:  []string{},
		},
		{
			name:  "only externals",
			suite: newSuite("a"),
			in:    []string{"pyyaml", "attrs"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.suite.FilterLocalPackages(tt.in))
		})
	}
}

func TestSuite_Lookup(t *testing.T) {
	t.Parallel()

	s := newSuite("a", "b", "c")

	p, ok := s.Package("b")
	require.True(t, ok)
	assert.Equal(t, "/suite/b", p.Path)

	_, ok = s.Package("missing")
	assert.False(t, ok)

	selected, err := s.Select([]string{"c", "a"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].Name)
	assert.Equal(t, "c", selected[1].Name)

	_, err = s.Select([]string{"nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestPackage_PublicationTag(t *testing.T) {
	t.Parallel()

	p := &domain.Package{Name: "core", Version: "1.2.3"}
	assert.Equal(t, "core/v1.2.3", p.PublicationTag())
	assert.Equal(t, "core/v*", domain.PublicationTagPattern("core"))
}
