// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/objcache/internal/adapters/config"
	_ "go.trai.ch/objcache/internal/adapters/fs"
	_ "go.trai.ch/objcache/internal/adapters/lock"
	_ "go.trai.ch/objcache/internal/adapters/logger"
	_ "go.trai.ch/objcache/internal/adapters/manifest"
	// Register app nodes.
	_ "go.trai.ch/objcache/internal/app"
)
