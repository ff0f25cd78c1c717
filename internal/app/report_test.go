package app_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/core/domain"
)

func TestRenderReport(t *testing.T) {
	core := &domain.Package{Name: "core", Version: "1.0.0"}
	web := &domain.Package{Name: "web", Version: "2.3.4"}
	docs := &domain.Package{Name: "docs", Version: "0.1.0"}
	plan := domain.NewReleasePlan([]*domain.Package{core, web, docs})

	core.Version = "1.0.1"
	for _, step := range domain.Steps {
		plan.Items[0].Set(step, domain.StatusDone)
	}

	web.Version = "2.3.5"
	plan.Items[1].Set(domain.StepBump, domain.StatusDone)
	plan.Items[1].Set(domain.StepRectify, domain.StatusDone)
	plan.Items[1].Set(domain.StepCommit, domain.StatusSkipped)
	plan.Items[1].Set(domain.StepPropagate, domain.StatusDone)
	plan.Items[1].Fail(domain.StepPublish, errors.New("upload rejected"))

	for _, step := range domain.Steps {
		plan.Items[2].Set(step, domain.StatusSkipped)
	}
	plan.Warn(&domain.StabilizationNonConvergence{MaxLoops: 3, Last: []string{"core", "web"}})

	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, plan, domain.Steps))
	goldie.New(t).Assert(t, "report_publish", buf.Bytes())
}

func TestRenderReport_StepSubset(t *testing.T) {
	core := &domain.Package{Name: "core", Version: "1.0.0"}
	web := &domain.Package{Name: "web", Version: "2.3.4"}
	plan := domain.NewReleasePlan([]*domain.Package{core, web})

	core.Version = "1.1.0"
	plan.Items[0].Set(domain.StepBump, domain.StatusDone)

	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, plan, []domain.Step{domain.StepBump}))
	goldie.New(t).Assert(t, "report_bump", buf.Bytes())
}
