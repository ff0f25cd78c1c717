package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
)

func (p *Pipeline) bump(ctx context.Context, run *packageRun) (domain.StepStatus, error) {
	pkg := run.item.Package

	if !run.opts.Force {
		changed, err := p.planner.HasChangesSincePublication(ctx, run.suite, pkg)
		if err != nil {
			return "", err
		}
		if !changed {
			run.out(fmt.Sprintf("Package %s has no new content to bump, skipping.", pkg.Name))
			return domain.StatusSkipped, nil
		}
	}

	next, err := domain.NextVersion(pkg.Version, run.opts.BumpLevel)
	if err != nil {
		return "", err
	}
	branch := domain.ReleaseBranch(next)

	if !run.opts.AssumeYes {
		question := fmt.Sprintf("Create version %s of package %s? This will create/switch to branch %q.",
			next, pkg.Name, branch)
		ok, err := p.confirmer.Confirm(question, true)
		if err != nil {
			return "", err
		}
		if !ok {
			run.out(fmt.Sprintf("Bump of %s declined, skipping.", pkg.Name))
			return domain.StatusSkipped, nil
		}
	}

	run.out(fmt.Sprintf("Bumping %s version to %s", pkg.Name, next))
	if err := p.vcs.CreateOrSwitchBranch(ctx, run.suite.Root, branch); err != nil {
		return "", err
	}
	run.out(fmt.Sprintf("Switched to branch %q", branch))

	if err := p.manifests.WriteVersion(pkg, next); err != nil {
		return "", err
	}
	pkg.Version = next
	run.out(fmt.Sprintf("Bumped from %q to %q", run.item.FromVersion, next))
	return domain.StatusDone, nil
}

func (p *Pipeline) rectify(ctx context.Context, run *packageRun) (domain.StepStatus, error) {
	result, err := p.rectifier.Rectify(ctx, run.item.Package, run.opts.Rectify)
	if err != nil {
		return "", err
	}
	if result.Warning != nil {
		run.plan.Warn(result.Warning)
	}
	return domain.StatusDone, nil
}

func (p *Pipeline) commit(ctx context.Context, run *packageRun) (domain.StepStatus, error) {
	pkg := run.item.Package
	dir := run.suite.Root

	branch, err := p.vcs.CurrentBranch(ctx, dir)
	if err != nil {
		return "", err
	}
	if err := p.vcs.EnsureUpstream(ctx, dir, run.opts.Remote, branch); err != nil {
		return "", run.remoteError("ensure upstream", branch, err)
	}
	if err := p.vcs.PullRebase(ctx, dir, run.opts.Remote, branch); err != nil {
		return "", run.remoteError("pull", branch, err)
	}

	changed, err := p.vcs.HasUncommittedChanges(ctx, dir)
	if err != nil {
		return "", err
	}
	if !changed {
		run.out(fmt.Sprintf("No changes to commit for %s.", pkg.Name))
		return domain.StatusSkipped, nil
	}

	if err := p.vcs.CommitAll(ctx, dir, domain.CommitMessage(pkg.Version)); err != nil {
		return "", err
	}
	if err := p.vcs.PushFollowingTags(ctx, dir, run.opts.Remote, branch); err != nil {
		return "", run.remoteError("push", branch, err)
	}
	run.out(fmt.Sprintf("Committed and pushed %s on %s.", pkg.Name, branch))
	return domain.StatusDone, nil
}

func (p *Pipeline) propagate(_ context.Context, run *packageRun) (domain.StepStatus, error) {
	pkg := run.item.Package

	dependents, err := p.planner.PropagatePackage(run.suite, run.m, pkg)
	if err != nil {
		return "", err
	}
	if len(dependents) == 0 {
		run.out(fmt.Sprintf("No package depends on %s.", pkg.Name))
		return domain.StatusSkipped, nil
	}
	run.out(fmt.Sprintf("Pinned %s %s in %s.", pkg.Name, pkg.Version, strings.Join(dependents, ", ")))
	return domain.StatusDone, nil
}

func (p *Pipeline) publish(ctx context.Context, run *packageRun) (domain.StepStatus, error) {
	pkg := run.item.Package
	dir := run.suite.Root
	tag := pkg.PublicationTag()

	exists, err := p.vcs.TagExists(ctx, dir, tag)
	if err != nil {
		return "", err
	}
	if exists && !run.opts.Force {
		run.out(fmt.Sprintf("%s is already published as %s, skipping.", pkg.Name, tag))
		return domain.StatusSkipped, nil
	}

	if err := p.publisher.Publish(ctx, pkg); err != nil {
		return "", err
	}
	run.out(fmt.Sprintf("Published %s as %s.", pkg.Name, tag))

	if exists {
		p.logger.Warn(fmt.Sprintf("Tag %s already exists locally; pushing it.", tag))
	} else if err := p.vcs.CreateAnnotatedTag(ctx, dir, tag, domain.TagMessage(tag)); err != nil {
		return "", err
	}
	if err := p.vcs.PushTag(ctx, dir, run.opts.Remote, tag); err != nil {
		return "", run.remoteError("push tag", "", err)
	}
	pkg.LastPublicationTag = tag

	if run.opts.MergeToMain && run.opts.MainBranch != "" {
		if err := p.mergeToMain(ctx, run); err != nil {
			return "", err
		}
	}
	return domain.StatusDone, nil
}

func (p *Pipeline) mergeToMain(ctx context.Context, run *packageRun) error {
	dir := run.suite.Root
	main := run.opts.MainBranch

	release, err := p.vcs.CurrentBranch(ctx, dir)
	if err != nil {
		return err
	}
	if release != main {
		if err := p.vcs.CreateOrSwitchBranch(ctx, dir, main); err != nil {
			return err
		}
		if err := p.vcs.MergeBranch(ctx, dir, release); err != nil {
			return err
		}
		run.out(fmt.Sprintf("Merged %s into %s.", release, main))
	}
	if err := p.vcs.PushFollowingTags(ctx, dir, run.opts.Remote, main); err != nil {
		return run.remoteError("push", main, err)
	}
	return nil
}

func (r *packageRun) remoteError(operation, branch string, err error) error {
	return &domain.RemoteOperationError{
		Path:      r.suite.Root,
		Package:   r.item.Package.Name,
		Operation: operation,
		Remote:    r.opts.Remote,
		Branch:    branch,
		Err:       err,
	}
}
