package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	_, bump := recorder.Record(ctx, "core: bump")
	_, err := bump.Stdout().Write([]byte("Bumping core to 1.0.1\n"))
	require.NoError(t, err)
	bump.Complete(nil)

	_, rectify := recorder.Record(ctx, "core: rectify")
	rectify.Cached()

	_, publish := recorder.Record(ctx, "core: publish")
	publish.Complete(errors.New("upload rejected"))

	// Same name twice must not collide.
	_, again := recorder.Record(ctx, "core: bump")
	again.Complete(nil)

	require.NoError(t, recorder.Close())
}
