package filestate

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/adapters/manifest"
	"go.trai.ch/ship/internal/core/ports"
)

// NodeID is the unique identifier for the file-state engine Graft node.
const NodeID graft.ID = "adapter.filestate"

func init() {
	graft.Register(graft.Node[ports.FileStateEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID},
		Run: func(ctx context.Context) (ports.FileStateEngine, error) {
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(afero.NewOsFs(), manifests), nil
		},
	})
}
