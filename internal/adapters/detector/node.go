package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the session detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[Session]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Session, error) {
			return DetectSession(), nil
		},
	})
}
