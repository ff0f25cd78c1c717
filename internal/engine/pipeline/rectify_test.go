package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

// scoped keeps the gate out of the way so every pass reaches the engine.
var scoped = domain.ScopeFilters{Path: "src/"}

func newRectifier(t *testing.T) (*pipeline.Rectifier, *mocks.MockFileStateEngine, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockFileStateEngine(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	gate := pipeline.NewGate(engine, mocks.NewMockConvergenceStore(ctrl), mocks.NewMockStateHasher(ctrl), logger)
	return pipeline.NewRectifier(gate, engine, logger), engine, logger
}

func TestRectifier_LoopConverges(t *testing.T) {
	r, engine, logger := newRectifier(t)
	pkg := &domain.Package{Name: "core", Path: "/suite/core"}

	gomock.InOrder(
		engine.EXPECT().Apply(gomock.Any(), pkg, scoped).Return(2, nil),
		engine.EXPECT().Apply(gomock.Any(), pkg, scoped).Return(1, nil),
		engine.EXPECT().Apply(gomock.Any(), pkg, scoped).Return(0, nil),
	)
	gomock.InOrder(
		logger.EXPECT().Info("Pass 1 completed with 2 operation(s); starting pass 2 of 10."),
		logger.EXPECT().Info("Pass 2 completed with 1 operation(s); starting pass 3 of 10."),
		logger.EXPECT().Info("Rectification of core completed successfully after 3 passes."),
	)

	res, err := r.Rectify(context.Background(), pkg, pipeline.RectifyOptions{Filters: scoped, Loop: true})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Passes)
	assert.Equal(t, 3, res.Operations)
	assert.True(t, res.Converged)
	assert.NoError(t, res.Warning)
}

func TestRectifier_SinglePass(t *testing.T) {
	r, engine, logger := newRectifier(t)
	pkg := &domain.Package{Name: "core", Path: "/suite/core"}

	engine.EXPECT().Apply(gomock.Any(), pkg, scoped).Return(2, nil)
	logger.EXPECT().Info("Rectification pass of core completed; applied 2 operations.")

	res, err := r.Rectify(context.Background(), pkg, pipeline.RectifyOptions{Filters: scoped})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Passes)
	assert.False(t, res.Converged)
}

func TestRectifier_LoopLimit(t *testing.T) {
	r, engine, logger := newRectifier(t)
	pkg := &domain.Package{Name: "core", Path: "/suite/core"}

	engine.EXPECT().Apply(gomock.Any(), pkg, scoped).Return(1, nil).Times(3)
	logger.EXPECT().Info(gomock.Any()).Times(2)
	logger.EXPECT().Warn("Loop limit reached (3/3); stopping further passes.")

	res, err := r.Rectify(context.Background(), pkg, pipeline.RectifyOptions{Filters: scoped, Loop: true, LoopLimit: 3})
	require.NoError(t, err, "the loop limit is a warning")
	assert.Equal(t, 3, res.Passes)
	assert.ErrorIs(t, res.Warning, domain.ErrRectifyLoopLimit)
}

func TestRectifier_DryRun(t *testing.T) {
	r, engine, logger := newRectifier(t)
	pkg := &domain.Package{Name: "core", Path: "/suite/core"}
	ops := []domain.FileOperation{{
		Kind: domain.OperationUpdate,
		Path: "version.txt",
		Diff: "--- a/version.txt\n+++ b/version.txt\n",
	}}

	engine.EXPECT().DryRun(gomock.Any(), pkg, domain.ScopeFilters{}).Return(ops, nil)
	logger.EXPECT().Info("Would update version.txt in core")
	logger.EXPECT().Info("--- a/version.txt\n+++ b/version.txt")

	res, err := r.Rectify(context.Background(), pkg, pipeline.RectifyOptions{DryRun: true, Loop: true})
	require.NoError(t, err)
	assert.Equal(t, ops, res.Planned)
	assert.Zero(t, res.Passes)
}
