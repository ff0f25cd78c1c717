package planner_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestPlanner_Propagate(t *testing.T) {
	f := newFixture(t)
	suite := suiteOf(f, []string{"A", "B", "C"}, nil)
	a, _ := suite.Package("A")
	b, _ := suite.Package("B")
	c, _ := suite.Package("C")
	a.Version = "2.0.0"
	m := domain.DependencyMap{"A": {}, "B": {"A"}, "C": {"A", "B"}}

	f.manifests.EXPECT().WritePinnedDependency(b, "A", "2.0.0").Return(nil)
	f.manifests.EXPECT().WritePinnedDependency(c, "A", "2.0.0").Return(nil)
	f.manifests.EXPECT().WritePinnedDependency(c, "B", "1.0.0").Return(nil)

	progress := mocks.NewMockProgressReporter(gomock.NewController(t))
	gomock.InOrder(
		progress.EXPECT().Advance(1, `Propagating package "A" version "2.0.0"`),
		progress.EXPECT().Advance(1, `Propagating package "B" version "1.0.0"`),
		progress.EXPECT().Advance(1, `Propagating package "C" version "1.0.0"`),
		progress.EXPECT().Finish(),
	)

	updates, err := f.planner.Propagate(suite, m, progress)
	require.NoError(t, err)
	assert.Equal(t, 3, updates)
}

func TestPlanner_Propagate_WriteError(t *testing.T) {
	f := newFixture(t)
	suite := suiteOf(f, []string{"A", "B"}, nil)
	b, _ := suite.Package("B")
	m := domain.DependencyMap{"A": {}, "B": {"A"}}

	f.manifests.EXPECT().WritePinnedDependency(b, "A", "1.0.0").Return(errors.New("read-only"))

	progress := mocks.NewMockProgressReporter(gomock.NewController(t))
	progress.EXPECT().Advance(1, `Propagating package "A" version "1.0.0"`)
	progress.EXPECT().Finish()

	_, err := f.planner.Propagate(suite, m, progress)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to pin dependency version")
	assert.ErrorContains(t, err, "read-only")
}

func TestPlanner_PropagatePackage_NoDependents(t *testing.T) {
	f := newFixture(t)
	suite := suiteOf(f, []string{"A", "B"}, nil)
	b, _ := suite.Package("B")

	dependents, err := f.planner.PropagatePackage(suite, domain.DependencyMap{"A": {}, "B": {"A"}}, b)
	require.NoError(t, err)
	assert.Empty(t, dependents)
}
