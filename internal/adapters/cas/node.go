package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/ship/internal/core/ports"
)

// NodeID is the unique identifier for the convergence store Graft node.
const NodeID graft.ID = "adapter.convergence_store"

func init() {
	graft.Register(graft.Node[ports.ConvergenceStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConvergenceStore, error) {
			return NewStore(afero.NewOsFs()), nil
		},
	})
}
