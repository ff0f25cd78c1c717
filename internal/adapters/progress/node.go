package progress

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/detector"
)

// NodeID is the unique identifier for the progress factory Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			session, err := graft.Dep[detector.Session](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(os.Stderr, session.Interactive()), nil
		},
	})
}
