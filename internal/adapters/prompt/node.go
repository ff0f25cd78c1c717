package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/detector"
	"go.trai.ch/ship/internal/core/ports"
)

// NodeID is the unique identifier for the confirmer Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Confirmer, error) {
			session, err := graft.Dep[detector.Session](ctx)
			if err != nil {
				return nil, err
			}
			return New(os.Stdin, os.Stderr, session.Interactive()), nil
		},
	})
}
