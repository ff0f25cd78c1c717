// Package pipeline runs the per-package release steps: bump, rectify,
// commit and push, propagate, publish.
package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner is the part of the release planner the pipeline consults.
type Planner interface {
	HasChangesSincePublication(ctx context.Context, suite *domain.Suite, pkg *domain.Package) (bool, error)
	PropagatePackage(suite *domain.Suite, m domain.DependencyMap, pkg *domain.Package) ([]string, error)
}

// Options configures a release run.
type Options struct {
	// Force bumps unchanged packages and republishes existing tags.
	Force bool
	// AssumeYes answers every confirmation with yes.
	AssumeYes bool
	BumpLevel domain.BumpLevel
	Remote    string
	// MainBranch receives the release branch after publishing when MergeToMain is set.
	MainBranch  string
	MergeToMain bool
	Rectify     RectifyOptions
	// Steps limits the run to a subset of domain.Steps, nil running them all.
	Steps []domain.Step
}

func (o Options) steps() []domain.Step {
	if len(o.Steps) == 0 {
		return domain.Steps
	}
	return o.Steps
}

// Pipeline executes release steps for packages in dependency order.
type Pipeline struct {
	planner   Planner
	vcs       ports.VersionControl
	manifests ports.ManifestStore
	publisher ports.RegistryPublisher
	rectifier *Rectifier
	confirmer ports.Confirmer
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Pipeline.
func New(
	planner Planner,
	vcs ports.VersionControl,
	manifests ports.ManifestStore,
	publisher ports.RegistryPublisher,
	rectifier *Rectifier,
	confirmer ports.Confirmer,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		planner:   planner,
		vcs:       vcs,
		manifests: manifests,
		publisher: publisher,
		rectifier: rectifier,
		confirmer: confirmer,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run releases pkgs one after the other, in the given order. A failed step
// stops only its own package; the following packages still run. Cancelling
// ctx stops before the next package or step and leaves the remaining steps
// pending. The returned plan always reflects what happened; the error is
// non-nil only when ctx was cancelled.
func (p *Pipeline) Run(
	ctx context.Context,
	suite *domain.Suite,
	m domain.DependencyMap,
	pkgs []*domain.Package,
	progress ports.ProgressReporter,
	opts Options,
) (*domain.ReleasePlan, error) {
	plan := domain.NewReleasePlan(pkgs)

	for i, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			p.logger.Warn(fmt.Sprintf("Interrupted, %d package(s) not released.", len(plan.Items)-i))
			return plan, zerr.Wrap(err, "release interrupted")
		}

		handle := progress.CreateSubRange(float64(i), float64(i+1), len(opts.steps()))
		p.runPackage(ctx, suite, m, plan, item, handle, opts)
		handle.Finish()
	}

	if err := ctx.Err(); err != nil {
		return plan, zerr.Wrap(err, "release interrupted")
	}
	return plan, nil
}

type stepFunc func(ctx context.Context, run *packageRun) (domain.StepStatus, error)

type packageRun struct {
	suite *domain.Suite
	m     domain.DependencyMap
	plan  *domain.ReleasePlan
	item  *domain.ReleaseItem
	opts  Options
	out   func(string)
}

func (p *Pipeline) runPackage(
	ctx context.Context,
	suite *domain.Suite,
	m domain.DependencyMap,
	plan *domain.ReleasePlan,
	item *domain.ReleaseItem,
	progress ports.ProgressReporter,
	opts Options,
) {
	steps := map[domain.Step]stepFunc{
		domain.StepBump:      p.bump,
		domain.StepRectify:   p.rectify,
		domain.StepCommit:    p.commit,
		domain.StepPropagate: p.propagate,
		domain.StepPublish:   p.publish,
	}
	labels := map[domain.Step]string{
		domain.StepBump:      "Bumping",
		domain.StepRectify:   "Rectifying file state for",
		domain.StepCommit:    "Committing and pushing",
		domain.StepPropagate: "Propagating version for",
		domain.StepPublish:   "Publishing",
	}
	name := item.Package.Name

	for _, step := range opts.steps() {
		if ctx.Err() != nil {
			return
		}
		progress.Advance(1, fmt.Sprintf("%s %s", labels[step], name))

		stepCtx, vertex := p.telemetry.Record(ctx, name+": "+step.String())
		run := &packageRun{
			suite: suite,
			m:     m,
			plan:  plan,
			item:  item,
			opts:  opts,
			out: func(msg string) {
				_, _ = fmt.Fprintln(vertex.Stdout(), msg)
				p.logger.Info(msg)
			},
		}

		status, err := steps[step](stepCtx, run)
		switch {
		case err != nil:
			vertex.Complete(err)
			item.Fail(step, err)
			p.logger.Error(item.Err)
			return
		case status == domain.StatusSkipped:
			vertex.Cached()
		default:
			vertex.Complete(nil)
		}
		item.Set(step, status)
	}
}
