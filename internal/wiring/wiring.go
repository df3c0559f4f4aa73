// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shipit/internal/adapters/config"
	_ "go.trai.ch/shipit/internal/adapters/fs"
	_ "go.trai.ch/shipit/internal/adapters/gcs"
	_ "go.trai.ch/shipit/internal/adapters/git"
	_ "go.trai.ch/shipit/internal/adapters/logger"
	_ "go.trai.ch/shipit/internal/adapters/manifest"
	_ "go.trai.ch/shipit/internal/adapters/scan"
	_ "go.trai.ch/shipit/internal/adapters/shell"
	_ "go.trai.ch/shipit/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/shipit/internal/app"
	_ "go.trai.ch/shipit/internal/engine/gate"
	_ "go.trai.ch/shipit/internal/engine/resolver"
	_ "go.trai.ch/shipit/internal/engine/rewrite"
)
