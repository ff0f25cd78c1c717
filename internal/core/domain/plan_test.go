package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
)

func TestReleasePlan(t *testing.T) {
	t.Parallel()

	a := &domain.Package{Name: "a", Version: "1.0.0"}
	b := &domain.Package{Name: "b", Version: "2.0.0"}
	plan := domain.NewReleasePlan([]*domain.Package{a, b})

	require.Len(t, plan.Items, 2)
	assert.Equal(t, "a", plan.Items[0].Package.Name)
	assert.Equal(t, "2.0.0", plan.Items[1].FromVersion)
	for _, item := range plan.Items {
		for _, step := range domain.Steps {
			assert.Equal(t, domain.StatusPending, item.Status(step))
		}
	}
	require.NoError(t, plan.Err())

	plan.Items[0].Set(domain.StepBump, domain.StatusDone)
	plan.Items[0].Set(domain.StepRectify, domain.StatusSkipped)
	plan.Items[1].Fail(domain.StepCommit, errors.New("push rejected"))

	assert.NoError(t, plan.Items[0].Err)
	assert.Equal(t, domain.StatusFailed, plan.Items[1].Status(domain.StepCommit))
	assert.Equal(t, domain.StatusSkipped, plan.Items[0].Status(domain.StepRectify))

	err := plan.Err()
	require.Error(t, err)
	assert.ErrorContains(t, err, "push rejected")
}

func TestStep_String(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(domain.Steps))
	for _, s := range domain.Steps {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"bump", "rectify", "commit", "propagate", "publish"}, names)
	assert.Equal(t, "step(9)", domain.Step(9).String())
}
