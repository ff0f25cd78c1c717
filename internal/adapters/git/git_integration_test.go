package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/git"
	"go.trai.ch/ship/internal/adapters/shell"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newRepo creates a repository with one commit and a bare "origin" remote.
func newRepo(t *testing.T) (*git.Git, string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	home := t.TempDir()
	env := map[string]string{
		"HOME":                home,
		"GIT_CONFIG_NOSYSTEM": "1",
		"GIT_AUTHOR_NAME":     "ship",
		"GIT_AUTHOR_EMAIL":    "ship@example.com",
		"GIT_COMMITTER_NAME":  "ship",
		"GIT_COMMITTER_EMAIL": "ship@example.com",
	}

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	g := git.New(shell.NewRunner(log), env)

	root := t.TempDir()
	remote := filepath.Join(t.TempDir(), "origin.git")
	dir := filepath.Join(root, "suite")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core", "ship.yaml"), []byte("name: core\nversion: 1.0.0\n"), 0o600))

	run := func(dir string, args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(), "HOME="+home, "GIT_CONFIG_NOSYSTEM=1")
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	run(root, "init", "--bare", "-b", "main", remote)
	run(dir, "init", "-b", "main")
	run(dir, "remote", "add", "origin", remote)

	ctx := context.Background()
	require.NoError(t, g.CommitAll(ctx, dir, "initial"))
	return g, dir
}

func TestGit_Integration_ReleaseFlow(t *testing.T) {
	g, dir := newRepo(t)
	ctx := context.Background()
	core := filepath.Join(dir, "core")

	tag, err := g.LastTagMatching(ctx, dir, "core/v*")
	require.NoError(t, err)
	assert.Empty(t, tag)

	require.NoError(t, g.EnsureUpstream(ctx, dir, "origin", "main"))
	require.NoError(t, g.CreateAnnotatedTag(ctx, dir, "core/v1.0.0", "Release core/v1.0.0"))

	exists, err := g.TagExists(ctx, dir, "core/v1.0.0")
	require.NoError(t, err)
	assert.True(t, exists)

	changed, err := g.HasChangesSince(ctx, dir, "core/v1.0.0", core)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(filepath.Join(core, "module.py"), []byte("VALUE = 1\n"), 0o600))
	changed, err = g.HasChangesSince(ctx, dir, "core/v1.0.0", core)
	require.NoError(t, err)
	assert.True(t, changed, "untracked files count as changes")

	dirty, err := g.HasUncommittedChanges(ctx, dir)
	require.NoError(t, err)
	assert.True(t, dirty)

	require.NoError(t, g.CreateOrSwitchBranch(ctx, dir, "version-1.0.1"))
	branch, err := g.CurrentBranch(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, "version-1.0.1", branch)

	require.NoError(t, g.CommitAll(ctx, dir, "Publishing version 1.0.1"))
	require.NoError(t, g.CreateAnnotatedTag(ctx, dir, "core/v1.0.1", "Release core/v1.0.1"))
	require.NoError(t, g.EnsureUpstream(ctx, dir, "origin", "version-1.0.1"))
	require.NoError(t, g.PushFollowingTags(ctx, dir, "origin", "version-1.0.1"))

	tag, err = g.LastTagMatching(ctx, dir, "core/v*")
	require.NoError(t, err)
	assert.Equal(t, "core/v1.0.1", tag)

	require.NoError(t, g.CreateOrSwitchBranch(ctx, dir, "main"))
	require.NoError(t, g.MergeBranch(ctx, dir, "version-1.0.1"))
	require.NoError(t, g.PullRebase(ctx, dir, "origin", "main"))
	require.NoError(t, g.PushFollowingTags(ctx, dir, "origin", "main"))

	dirty, err = g.HasUncommittedChanges(ctx, dir)
	require.NoError(t, err)
	assert.False(t, dirty)
}
