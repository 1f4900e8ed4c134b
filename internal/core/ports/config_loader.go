package ports

import "go.trai.ch/objcache/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	Load(cwd string) (*domain.Config, error)
}
