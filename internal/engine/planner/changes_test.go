package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
)

func TestPlanner_PackagesToPublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fresh := &domain.Package{Name: "fresh", Version: "0.1.0", Path: "/suite/fresh"}
	stable := &domain.Package{Name: "stable", Version: "1.0.0", Path: "/suite/stable"}
	edited := &domain.Package{Name: "edited", Version: "2.0.0", Path: "/suite/edited"}
	suite := &domain.Suite{Root: "/suite", Packages: []*domain.Package{fresh, stable, edited}}

	f.vcs.EXPECT().LastTagMatching(ctx, "/suite", "fresh/v*").Return("", nil)
	f.vcs.EXPECT().LastTagMatching(ctx, "/suite", "stable/v*").Return("stable/v1.0.0", nil)
	f.vcs.EXPECT().HasChangesSince(ctx, "/suite", "stable/v1.0.0", "/suite/stable").Return(false, nil)
	f.vcs.EXPECT().LastTagMatching(ctx, "/suite", "edited/v*").Return("edited/v2.0.0", nil)
	f.vcs.EXPECT().HasChangesSince(ctx, "/suite", "edited/v2.0.0", "/suite/edited").Return(true, nil)

	got, err := f.planner.PackagesToPublish(ctx, suite)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh", "edited"}, namesOf(got))
	assert.Equal(t, "stable/v1.0.0", stable.LastPublicationTag)
	assert.Empty(t, fresh.LastPublicationTag)
}

func TestPlanner_HasChangesSincePublication_NeverTagged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pkg := &domain.Package{Name: "new", Path: "/suite/new"}

	f.vcs.EXPECT().LastTagMatching(ctx, "/suite", "new/v*").Return("", nil)

	changed, err := f.planner.HasChangesSincePublication(ctx, &domain.Suite{Root: "/suite"}, pkg)
	require.NoError(t, err)
	assert.True(t, changed)
}
