package shell_test

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/shell"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_StreamsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Info("line1"),
		log.EXPECT().Info("part1part2"),
	)

	runner := shell.NewRunner(log)
	var stdout bytes.Buffer
	err := runner.Run(context.Background(), &domain.Command{
		Dir:  t.TempDir(),
		Args: []string{"sh", "-c", "echo line1; printf part1; sleep 0.1; printf part2"},
	}, &stdout)

	require.NoError(t, err)
	assert.Equal(t, "line1\npart1part2", stdout.String())
}

func TestRunner_Run_StderrLoggedAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, "upload rejected", err.Error())
	})

	runner := shell.NewRunner(log)
	err := runner.Run(context.Background(), &domain.Command{
		Args: []string{"sh", "-c", "echo upload rejected >&2"},
	}, nil)

	require.NoError(t, err)
}

func TestRunner_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(log)
	err := runner.Run(context.Background(), &domain.Command{
		Args: []string{"sh", "-c", "exit 3"},
	}, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())
	assert.ErrorContains(t, err, "exit status 3")
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))

	err := runner.Run(context.Background(), &domain.Command{}, nil)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRunner_Output(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))

	out, err := runner.Output(context.Background(), &domain.Command{
		Args: []string{"sh", "-c", "echo $SHIP_TEST_VALUE"},
		Env:  map[string]string{"SHIP_TEST_VALUE": "core/v1.0.0"},
	})

	require.NoError(t, err)
	assert.Equal(t, "core/v1.0.0\n", out)
}

func TestRunner_Output_StderrInError(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))

	_, err := runner.Output(context.Background(), &domain.Command{
		Args: []string{"sh", "-c", "echo fatal: not a git repository >&2; exit 128"},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "exit status 128")
}

func TestRunner_Output_Cancelled(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Output(ctx, &domain.Command{Args: []string{"sleep", "5"}})
	assert.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/home/dev", "SECRET_TOKEN=x", "MALFORMED"},
		map[string]string{"GIT_AUTHOR_NAME": "ship"},
	)
	slices.Sort(env)

	assert.Equal(t, []string{"GIT_AUTHOR_NAME=ship", "HOME=/home/dev", "PATH=/usr/bin"}, env)
}
