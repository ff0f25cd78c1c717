package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/filestate"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/manifest"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/prompt"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/registry"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/engine/planner"
)

const (
	// GateNodeID is the unique identifier for the convergence gate Graft node.
	GateNodeID graft.ID = "engine.gate"
	// RectifierNodeID is the unique identifier for the rectifier Graft node.
	RectifierNodeID graft.ID = "engine.rectifier"
	// NodeID is the unique identifier for the release pipeline Graft node.
	NodeID graft.ID = "engine.pipeline"
)

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        GateNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{filestate.NodeID, cas.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Gate, error) {
			engine, err := graft.Dep[ports.FileStateEngine](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConvergenceStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.StateHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGate(engine, store, hasher, log), nil
		},
	})

	graft.Register(graft.Node[*Rectifier]{
		ID:        RectifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{GateNodeID, filestate.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Rectifier, error) {
			gate, err := graft.Dep[*Gate](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[ports.FileStateEngine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRectifier(gate, engine, log), nil
		},
	})

	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			planner.NodeID,
			git.NodeID,
			manifest.NodeID,
			registry.NodeID,
			RectifierNodeID,
			prompt.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runPipelineNode,
	})
}

func runPipelineNode(ctx context.Context) (*Pipeline, error) {
	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}
	vcs, err := graft.Dep[ports.VersionControl](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	publisher, err := graft.Dep[ports.RegistryPublisher](ctx)
	if err != nil {
		return nil, err
	}
	rectifier, err := graft.Dep[*Rectifier](ctx)
	if err != nil {
		return nil, err
	}
	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(plan, vcs, manifests, publisher, rectifier, confirmer, telemetry, log), nil
}
