// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/domx/internal/adapters/config"
	_ "go.trai.ch/domx/internal/adapters/fs"
	_ "go.trai.ch/domx/internal/adapters/logger"
	_ "go.trai.ch/domx/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/domx/internal/app"
)
