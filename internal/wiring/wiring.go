// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ship/internal/adapters/cas"
	_ "go.trai.ch/ship/internal/adapters/config"
	_ "go.trai.ch/ship/internal/adapters/detector"
	_ "go.trai.ch/ship/internal/adapters/filestate"
	_ "go.trai.ch/ship/internal/adapters/fs"
	_ "go.trai.ch/ship/internal/adapters/git"
	_ "go.trai.ch/ship/internal/adapters/logger"
	_ "go.trai.ch/ship/internal/adapters/manifest"
	_ "go.trai.ch/ship/internal/adapters/progress"
	_ "go.trai.ch/ship/internal/adapters/prompt"
	_ "go.trai.ch/ship/internal/adapters/registry"
	_ "go.trai.ch/ship/internal/adapters/scanner"
	_ "go.trai.ch/ship/internal/adapters/settings"
	_ "go.trai.ch/ship/internal/adapters/shell"
	_ "go.trai.ch/ship/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/ship/internal/app"
	_ "go.trai.ch/ship/internal/engine/pipeline"
	_ "go.trai.ch/ship/internal/engine/planner"
)
