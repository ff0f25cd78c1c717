// Package git implements ports.VersionControl on top of the git binary.
package git

import (
	"context"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Git runs git subcommands through a ports.CommandRunner.
type Git struct {
	runner ports.CommandRunner
	env    map[string]string
}

var _ ports.VersionControl = (*Git)(nil)

// New creates a Git adapter. env is passed to every git invocation.
func New(runner ports.CommandRunner, env map[string]string) *Git {
	return &Git{runner: runner, env: env}
}

func (g *Git) output(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := g.runner.Output(ctx, &domain.Command{
		Dir:  dir,
		Args: append([]string{"git"}, args...),
		Env:  g.env,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "git "+args[0]+" failed"), "dir", dir)
	}
	return out, nil
}

func (g *Git) exec(ctx context.Context, dir string, args ...string) error {
	_, err := g.output(ctx, dir, args...)
	return err
}

// LastTagMatching returns the highest version tag matching pattern, or "".
func (g *Git) LastTagMatching(ctx context.Context, dir, pattern string) (string, error) {
	out, err := g.output(ctx, dir, "tag", "--list", pattern, "--sort=-v:refname")
	if err != nil {
		return "", err
	}
	return firstLine(out), nil
}

// HasChangesSince reports tracked differences between ref and the working
// tree, or untracked files, below scopePath.
func (g *Git) HasChangesSince(ctx context.Context, dir, ref, scopePath string) (bool, error) {
	diff, err := g.output(ctx, dir, "diff", "--name-only", ref, "--", scopePath)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(diff) != "" {
		return true, nil
	}

	untracked, err := g.output(ctx, dir, "ls-files", "--others", "--exclude-standard", "--", scopePath)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(untracked) != "", nil
}

// HasUncommittedChanges reports staged, unstaged or untracked changes.
func (g *Git) HasUncommittedChanges(ctx context.Context, dir string) (bool, error) {
	out, err := g.output(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitAll stages everything and commits it.
func (g *Git) CommitAll(ctx context.Context, dir, message string) error {
	if err := g.exec(ctx, dir, "add", "-A"); err != nil {
		return err
	}
	return g.exec(ctx, dir, "commit", "-m", message)
}

// EnsureUpstream pushes branch with tracking when it has no upstream yet.
func (g *Git) EnsureUpstream(ctx context.Context, dir, remote, branch string) error {
	if err := g.exec(ctx, dir, "rev-parse", "--abbrev-ref", branch+"@{u}"); err == nil {
		return nil
	}
	return g.exec(ctx, dir, "push", "-u", remote, branch)
}

// PullRebase rebases the current branch onto its remote counterpart.
func (g *Git) PullRebase(ctx context.Context, dir, remote, branch string) error {
	return g.exec(ctx, dir, "pull", "--rebase", "--autostash", remote, branch)
}

// PushFollowingTags pushes branch together with annotated tags reachable from it.
func (g *Git) PushFollowingTags(ctx context.Context, dir, remote, branch string) error {
	return g.exec(ctx, dir, "push", "--follow-tags", remote, branch)
}

// CreateOrSwitchBranch switches to name, creating it from HEAD if needed.
func (g *Git) CreateOrSwitchBranch(ctx context.Context, dir, name string) error {
	if err := g.exec(ctx, dir, "switch", name); err == nil {
		return nil
	}
	return g.exec(ctx, dir, "switch", "-c", name)
}

// CurrentBranch returns the checked out branch name.
func (g *Git) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := g.output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return firstLine(out), nil
}

// MergeBranch merges name into the current branch with a merge commit.
func (g *Git) MergeBranch(ctx context.Context, dir, name string) error {
	return g.exec(ctx, dir, "merge", "--no-ff", "--no-edit", name)
}

// CreateAnnotatedTag tags HEAD.
func (g *Git) CreateAnnotatedTag(ctx context.Context, dir, name, message string) error {
	return g.exec(ctx, dir, "tag", "-a", name, "-m", message)
}

// TagExists reports whether the tag exists locally.
func (g *Git) TagExists(ctx context.Context, dir, name string) (bool, error) {
	out, err := g.runner.Output(ctx, &domain.Command{
		Dir:  dir,
		Args: []string{"git", "tag", "--list", name},
		Env:  g.env,
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "git tag failed"), "dir", dir)
	}
	return firstLine(out) == name, nil
}

// PushTag pushes a single tag.
func (g *Git) PushTag(ctx context.Context, dir, remote, name string) error {
	return g.exec(ctx, dir, "push", remote, "refs/tags/"+name)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
