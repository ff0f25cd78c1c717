package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/registry"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	manifests := mocks.NewMockManifestStore(ctrl)
	runner := mocks.NewMockCommandRunner(ctrl)
	pkg := &domain.Package{Name: "core", Version: "1.2.0", Path: "/suite/core"}

	manifests.EXPECT().Load("/suite/core").Return(&domain.Manifest{
		Name:    "core",
		Version: "1.2.0",
		Publish: []string{"twine", "upload", "dist/*"},
	}, nil)
	runner.EXPECT().Run(gomock.Any(), &domain.Command{
		Dir:  "/suite/core",
		Args: []string{"twine", "upload", "dist/*"},
		Env:  map[string]string{"SHIP_PACKAGE": "core", "SHIP_VERSION": "1.2.0"},
	}, nil).Return(nil)

	require.NoError(t, registry.NewPublisher(manifests, runner).Publish(context.Background(), pkg))
}

func TestPublisher_Publish_MissingCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	manifests := mocks.NewMockManifestStore(ctrl)
	runner := mocks.NewMockCommandRunner(ctrl)

	manifests.EXPECT().Load("/suite/core").Return(&domain.Manifest{Name: "core", Version: "1.0.0"}, nil)

	err := registry.NewPublisher(manifests, runner).
		Publish(context.Background(), &domain.Package{Name: "core", Path: "/suite/core"})
	assert.ErrorIs(t, err, domain.ErrPublishCommandMissing)
}

func TestPublisher_Publish_CommandFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	manifests := mocks.NewMockManifestStore(ctrl)
	runner := mocks.NewMockCommandRunner(ctrl)
	cause := errors.New("exit status 1")

	manifests.EXPECT().Load("/suite/core").Return(&domain.Manifest{Version: "1.0.0", Publish: []string{"false"}}, nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), nil).Return(cause)

	err := registry.NewPublisher(manifests, runner).
		Publish(context.Background(), &domain.Package{Name: "core", Path: "/suite/core"})
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "publish command failed")
}
