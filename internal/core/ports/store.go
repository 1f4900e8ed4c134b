package ports

import "go.trai.ch/objcache/internal/core/domain"

// ManifestStore defines the interface for persisting the manifest of a cache directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest stored in dir.
	// A missing manifest yields an empty manifest and no error. A manifest that
	// cannot be parsed yields an empty manifest and an error wrapping
	// domain.ErrManifestUnavailable.
	Load(dir string) (domain.Manifest, error)

	// Save replaces the manifest stored in dir with m.
	Save(dir string, m domain.Manifest) error
}
