package ports

import "context"

// VersionControl abstracts the repository operations of a release.
// Every call runs in dir, the repository working tree.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// LastTagMatching returns the newest tag matching pattern, or "" if none exists.
	LastTagMatching(ctx context.Context, dir, pattern string) (string, error)
	// HasChangesSince reports whether scopePath differs between ref and the working tree.
	HasChangesSince(ctx context.Context, dir, ref, scopePath string) (bool, error)
	// HasUncommittedChanges reports whether the working tree or index holds changes.
	HasUncommittedChanges(ctx context.Context, dir string) (bool, error)
	// CommitAll stages every change and commits it with message.
	CommitAll(ctx context.Context, dir, message string) error
	// EnsureUpstream sets remote/branch as upstream of the current branch if none is set.
	EnsureUpstream(ctx context.Context, dir, remote, branch string) error
	// PullRebase rebases local commits onto remote/branch.
	PullRebase(ctx context.Context, dir, remote, branch string) error
	// PushFollowingTags pushes branch and the annotated tags reachable from it.
	PushFollowingTags(ctx context.Context, dir, remote, branch string) error
	// CreateOrSwitchBranch switches to name, creating it if needed.
	CreateOrSwitchBranch(ctx context.Context, dir, name string) error
	// CurrentBranch returns the checked out branch.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// MergeBranch merges name into the current branch.
	MergeBranch(ctx context.Context, dir, name string) error
	// CreateAnnotatedTag tags HEAD.
	CreateAnnotatedTag(ctx context.Context, dir, name, message string) error
	// TagExists reports whether the tag exists locally.
	TagExists(ctx context.Context, dir, name string) (bool, error)
	// PushTag pushes a single tag to remote.
	PushTag(ctx context.Context, dir, remote, name string) error
}
