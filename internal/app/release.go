package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.trai.ch/ship/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/multierr"
)

// PrepareCommitMessage is the message of the commit created by Prepare and CommitAndPush.
const PrepareCommitMessage = "Propagate package versions"

// BumpOptions configures Bump.
type BumpOptions struct {
	// All bumps every package, changed or not.
	All bool
	// Packages restricts the bump to these names.
	Packages []string
	// Level overrides the bump_level setting.
	Level string
	Yes   bool
	Force bool
}

// Bump creates the next version of the changed packages, or of the selected ones.
func (a *App) Bump(ctx context.Context, opts BumpOptions) error {
	if opts.All && len(opts.Packages) > 0 {
		return zerr.Wrap(domain.ErrConflictingOptions, "use either --all or --package, not both")
	}

	s, err := a.open()
	if err != nil {
		return err
	}
	level, err := bumpLevel(opts.Level, s.settings)
	if err != nil {
		return err
	}

	ordered, m, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}
	targets, err := selectPackages(s.suite, ordered, opts.Packages)
	if err != nil {
		return err
	}

	progress := a.progress(len(targets))
	plan, err := a.pipeline.Run(ctx, s.suite, m, targets, progress, pipeline.Options{
		Force:     opts.Force || opts.All,
		AssumeYes: opts.Yes,
		BumpLevel: level,
		Remote:    s.settings.Remote,
		Steps:     []domain.Step{domain.StepBump},
	})
	progress.Finish()
	if err != nil {
		return err
	}
	if err := RenderReport(a.out, plan, []domain.Step{domain.StepBump}); err != nil {
		return err
	}
	return releaseError(plan)
}

// Propagate writes every package's version into the manifests of its dependents.
func (a *App) Propagate(_ context.Context) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	return a.propagate(s)
}

func (a *App) propagate(s *session) error {
	_, m, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}

	progress := a.progress(len(s.suite.Packages))
	updates, err := a.planner.Propagate(s.suite, m, progress)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Versions updated: %d dependency pin(s) written.", updates))
	return nil
}

// RectifyOptions configures Rectify.
type RectifyOptions struct {
	pipeline.RectifyOptions
	// Packages restricts the run to these names.
	Packages []string
}

// Rectify reconciles the file state of the selected packages. A failing
// package does not stop the others; their errors are combined.
func (a *App) Rectify(ctx context.Context, opts RectifyOptions) error {
	s, err := a.open()
	if err != nil {
		return err
	}

	targets, err := selectPackages(s.suite, s.suite.Packages, opts.Packages)
	if err != nil {
		return err
	}
	if opts.LoopLimit <= 0 {
		opts.LoopLimit = s.settings.LoopLimit
	}

	var errs error
	for _, pkg := range targets {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if _, err := a.rectifier.Rectify(ctx, pkg, opts.RectifyOptions); err != nil {
			errs = multierr.Append(errs, zerr.With(err, "package", pkg.Name))
		}
	}
	return errs
}

// CommitOptions configures CommitAndPush.
type CommitOptions struct {
	// Yes confirms committing and pushing the pending changes.
	Yes bool
}

// CommitAndPush commits the pending changes of the suite and pushes them.
// Without Yes, pending changes only raise an UncommittedChangesBlock warning.
func (a *App) CommitAndPush(ctx context.Context, opts CommitOptions) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	return a.commit(ctx, s, opts.Yes, "commit")
}

func (a *App) commit(ctx context.Context, s *session, yes bool, phase string) error {
	root := s.suite.Root
	remote := s.settings.Remote

	changed, err := a.vcs.HasUncommittedChanges(ctx, root)
	if err != nil {
		return err
	}
	if !changed {
		a.logger.Info("No uncommitted changes found in the suite.")
		return nil
	}
	if !yes {
		a.logger.Warn((&domain.UncommittedChangesBlock{Phase: phase}).Error())
		return nil
	}

	branch, err := a.vcs.CurrentBranch(ctx, root)
	if err != nil {
		return err
	}
	remoteErr := func(operation string, err error) error {
		return &domain.RemoteOperationError{Path: root, Operation: operation, Remote: remote, Branch: branch, Err: err}
	}

	if err := a.vcs.EnsureUpstream(ctx, root, remote, branch); err != nil {
		return remoteErr("ensure upstream", err)
	}
	if err := a.vcs.PullRebase(ctx, root, remote, branch); err != nil {
		return remoteErr("pull", err)
	}
	if err := a.vcs.CommitAll(ctx, root, PrepareCommitMessage); err != nil {
		return err
	}
	if err := a.vcs.PushFollowingTags(ctx, root, remote, branch); err != nil {
		return remoteErr("push", err)
	}
	a.logger.Info(fmt.Sprintf("Committed and pushed suite changes on %s.", branch))
	return nil
}

// PrepareOptions configures Prepare.
type PrepareOptions struct {
	Yes bool
}

// Prepare validates dependency declarations, propagates versions and commits
// the result.
func (a *App) Prepare(ctx context.Context, opts PrepareOptions) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	if err := a.check(ctx, s); err != nil {
		return err
	}
	if err := a.propagate(s); err != nil {
		return err
	}
	if err := a.commit(ctx, s, opts.Yes, "prepare"); err != nil {
		return err
	}
	a.logger.Info("Preparation complete.")
	return nil
}

// PublishOptions configures Publish.
type PublishOptions struct {
	Force bool
	Yes   bool
	// DryRun prints the packages that would be released without touching anything.
	DryRun bool
	// MaxLoops overrides the max_loops setting.
	MaxLoops int
	// Level overrides the bump_level setting.
	Level string
	// Packages restricts the release to these names.
	Packages []string
}

// Publish stabilizes the publish set, runs the release pipeline on it and
// prints the report.
func (a *App) Publish(ctx context.Context, opts PublishOptions) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	level, err := bumpLevel(opts.Level, s.settings)
	if err != nil {
		return err
	}
	if _, err := s.suite.Select(opts.Packages); err != nil {
		return err
	}

	if opts.DryRun {
		return a.planPublish(ctx, s, level, opts.Packages)
	}

	maxLoops := opts.MaxLoops
	if maxLoops <= 0 {
		maxLoops = s.settings.MaxLoops
	}
	stable, err := a.planner.Stabilize(ctx, s.suite, maxLoops)
	if err != nil {
		return err
	}
	targets, err := publishTargets(s.suite, stable, opts.Packages, opts.Force)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		a.logger.Info("No package changed since its last publication.")
		return nil
	}

	progress := a.progress(len(targets))
	plan, runErr := a.pipeline.Run(ctx, s.suite, stable.Map, targets, progress, pipeline.Options{
		Force:       opts.Force,
		AssumeYes:   opts.Yes,
		BumpLevel:   level,
		Remote:      s.settings.Remote,
		MainBranch:  s.settings.MainBranch,
		MergeToMain: s.settings.MergeToMain,
		Rectify: pipeline.RectifyOptions{
			Force:     opts.Force,
			Loop:      true,
			LoopLimit: s.settings.LoopLimit,
		},
	})
	progress.Finish()
	if stable.Warning != nil {
		plan.Warnings = append([]error{stable.Warning}, plan.Warnings...)
	}

	if err := RenderReport(a.out, plan, domain.Steps); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	return releaseError(plan)
}

// planPublish prints the publish set without stabilizing it, since
// stabilization writes dependency pins.
func (a *App) planPublish(ctx context.Context, s *session, level domain.BumpLevel, names []string) error {
	ordered, _, err := a.planner.Order(s.suite)
	if err != nil {
		return err
	}
	candidates, err := selectPackages(s.suite, ordered, names)
	if err != nil {
		return err
	}

	var rows []PlanRow
	for _, pkg := range candidates {
		changed, err := a.planner.HasChangesSincePublication(ctx, s.suite, pkg)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		next, err := domain.NextVersion(pkg.Version, level)
		if err != nil {
			return err
		}
		rows = append(rows, PlanRow{Package: pkg, Next: next})
	}
	if len(rows) == 0 {
		a.logger.Info("No package changed since its last publication.")
		return nil
	}
	return RenderPlan(a.out, rows)
}

func bumpLevel(flag string, settings domain.Settings) (domain.BumpLevel, error) {
	if flag == "" {
		flag = settings.BumpLevel
	}
	return domain.ParseBumpLevel(flag)
}

// selectPackages keeps the packages of ordered named in names, or all of them
// when names is empty.
func selectPackages(suite *domain.Suite, ordered []*domain.Package, names []string) ([]*domain.Package, error) {
	if len(names) == 0 {
		return ordered, nil
	}
	if _, err := suite.Select(names); err != nil {
		return nil, err
	}
	selected := make([]*domain.Package, 0, len(names))
	for _, pkg := range ordered {
		if slices.Contains(names, pkg.Name) {
			selected = append(selected, pkg)
		}
	}
	return selected, nil
}

// publishTargets narrows the stabilized set to names. A forced run releases
// the named packages even when they did not change.
func publishTargets(
	suite *domain.Suite,
	stable *planner.Stabilization,
	names []string,
	force bool,
) ([]*domain.Package, error) {
	if len(names) == 0 {
		return stable.ToPublish, nil
	}
	pool := stable.ToPublish
	if force {
		pool = make([]*domain.Package, 0, len(stable.Order))
		for _, name := range stable.Order {
			if pkg, ok := suite.Package(name); ok {
				pool = append(pool, pkg)
			}
		}
	}
	return selectPackages(suite, pool, names)
}

// releaseError reports failed packages. Their errors were already logged by
// the pipeline.
func releaseError(plan *domain.ReleasePlan) error {
	if err := plan.Err(); err != nil {
		return errors.Join(domain.ErrReleaseFailed, err)
	}
	return nil
}
