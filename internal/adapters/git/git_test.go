package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/git"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func expectGit(runner *mocks.MockCommandRunner, out string, err error, args ...string) *gomock.Call {
	return runner.EXPECT().
		Output(gomock.Any(), &domain.Command{Dir: "/suite", Args: append([]string{"git"}, args...)}).
		Return(out, err)
}

func TestGit_LastTagMatching(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{name: "newest first", out: "core/v1.10.0\ncore/v1.9.0\n", want: "core/v1.10.0"},
		{name: "never tagged", out: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewMockCommandRunner(gomock.NewController(t))
			expectGit(runner, tt.out, nil, "tag", "--list", "core/v*", "--sort=-v:refname")

			tag, err := git.New(runner, nil).LastTagMatching(context.Background(), "/suite", "core/v*")
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func TestGit_HasChangesSince(t *testing.T) {
	tests := []struct {
		name      string
		diff      string
		untracked *string
		want      bool
	}{
		{name: "tracked change", diff: "core/module.py\n", want: true},
		{name: "untracked file", diff: "", untracked: ptr("core/new.py\n"), want: true},
		{name: "clean", diff: "", untracked: ptr(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewMockCommandRunner(gomock.NewController(t))
			expectGit(runner, tt.diff, nil, "diff", "--name-only", "core/v1.0.0", "--", "/suite/core")
			if tt.untracked != nil {
				expectGit(runner, *tt.untracked, nil, "ls-files", "--others", "--exclude-standard", "--", "/suite/core")
			}

			changed, err := git.New(runner, nil).HasChangesSince(context.Background(), "/suite", "core/v1.0.0", "/suite/core")
			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
		})
	}
}

func TestGit_EnsureUpstream(t *testing.T) {
	t.Run("upstream exists", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(gomock.NewController(t))
		expectGit(runner, "origin/main\n", nil, "rev-parse", "--abbrev-ref", "main@{u}")

		require.NoError(t, git.New(runner, nil).EnsureUpstream(context.Background(), "/suite", "origin", "main"))
	})

	t.Run("upstream missing", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(gomock.NewController(t))
		expectGit(runner, "", errors.New("no upstream"), "rev-parse", "--abbrev-ref", "version-1.0.1@{u}")
		expectGit(runner, "", nil, "push", "-u", "origin", "version-1.0.1")

		require.NoError(t, git.New(runner, nil).EnsureUpstream(context.Background(), "/suite", "origin", "version-1.0.1"))
	})
}

func TestGit_CreateOrSwitchBranch_Creates(t *testing.T) {
	runner := mocks.NewMockCommandRunner(gomock.NewController(t))
	expectGit(runner, "", errors.New("invalid reference"), "switch", "version-2.0.0")
	expectGit(runner, "", nil, "switch", "-c", "version-2.0.0")

	require.NoError(t, git.New(runner, nil).CreateOrSwitchBranch(context.Background(), "/suite", "version-2.0.0"))
}

func TestGit_CommitAll_StopsOnAddFailure(t *testing.T) {
	runner := mocks.NewMockCommandRunner(gomock.NewController(t))
	expectGit(runner, "", errors.New("index.lock exists"), "add", "-A")

	err := git.New(runner, nil).CommitAll(context.Background(), "/suite", "Publishing version 1.0.1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "index.lock exists")
}

func TestGit_RemoteCommands(t *testing.T) {
	tests := []struct {
		name string
		call func(g *git.Git) error
		args []string
	}{
		{
			name: "pull rebase",
			call: func(g *git.Git) error { return g.PullRebase(context.Background(), "/suite", "origin", "main") },
			args: []string{"pull", "--rebase", "--autostash", "origin", "main"},
		},
		{
			name: "push following tags",
			call: func(g *git.Git) error { return g.PushFollowingTags(context.Background(), "/suite", "origin", "main") },
			args: []string{"push", "--follow-tags", "origin", "main"},
		},
		{
			name: "push tag",
			call: func(g *git.Git) error { return g.PushTag(context.Background(), "/suite", "origin", "core/v1.0.1") },
			args: []string{"push", "origin", "refs/tags/core/v1.0.1"},
		},
		{
			name: "annotated tag",
			call: func(g *git.Git) error {
				return g.CreateAnnotatedTag(context.Background(), "/suite", "core/v1.0.1", "Release core/v1.0.1")
			},
			args: []string{"tag", "-a", "core/v1.0.1", "-m", "Release core/v1.0.1"},
		},
		{
			name: "merge",
			call: func(g *git.Git) error { return g.MergeBranch(context.Background(), "/suite", "version-1.0.1") },
			args: []string{"merge", "--no-ff", "--no-edit", "version-1.0.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewMockCommandRunner(gomock.NewController(t))
			expectGit(runner, "", nil, tt.args...)

			require.NoError(t, tt.call(git.New(runner, nil)))
		})
	}
}

func ptr(s string) *string { return &s }
