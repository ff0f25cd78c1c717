// Package planner decides what a release works on: the suite-local dependency
// map and its order, declaration validation, change detection, version
// propagation and the stabilized publish set.
package planner

import (
	"go.trai.ch/ship/internal/core/ports"
)

// DefaultMaxLoops bounds the stabilization loop when no limit is configured.
const DefaultMaxLoops = 3

// Planner computes release plans for a suite.
type Planner struct {
	manifests ports.ManifestStore
	scanner   ports.SourceScanner
	vcs       ports.VersionControl
	logger    ports.Logger
}

// New creates a new Planner.
func New(
	manifests ports.ManifestStore,
	scanner ports.SourceScanner,
	vcs ports.VersionControl,
	logger ports.Logger,
) *Planner {
	return &Planner{
		manifests: manifests,
		scanner:   scanner,
		vcs:       vcs,
		logger:    logger,
	}
}
