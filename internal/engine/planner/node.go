package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/git"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/scanner"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			scanner.NodeID,
			git.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			sourceScanner, err := graft.Dep[ports.SourceScanner](ctx)
			if err != nil {
				return nil, err
			}

			vcs, err := graft.Dep[ports.VersionControl](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, sourceScanner, vcs, log), nil
		},
	})
}
