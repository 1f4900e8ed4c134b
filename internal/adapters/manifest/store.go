// Package manifest implements persistence of cache directory manifests.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using one JSON document per cache directory.
type Store struct{}

// NewStore creates a new ManifestStore.
func NewStore() *Store {
	return &Store{}
}

// Load reads the manifest stored in dir.
func (s *Store) Load(dir string) (domain.Manifest, error) {
	path := domain.ManifestPath(dir)

	//nolint:gosec // Path is derived from the cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Manifest{}, nil
		}
		return domain.Manifest{}, errors.Join(domain.ErrManifestUnavailable,
			zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path))
	}

	if len(data) == 0 {
		return domain.Manifest{}, nil
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Manifest{}, errors.Join(domain.ErrManifestUnavailable,
			zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "path", path))
	}
	if m == nil {
		// A literal "null" document.
		m = domain.Manifest{}
	}

	return m, nil
}

// Save replaces the manifest stored in dir with m.
// The document is written to a temporary file and renamed into place, so
// readers observe either the previous or the new manifest.
func (s *Store) Save(dir string, m domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrManifestMarshalFailed, err)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrDirectoryCreationFailed, zerr.With(err, "path", dir))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(domain.ManifestPath(dir))+".tmp-*")
	if err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", dir))
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", tmpPath))
	}

	if err := os.Rename(tmpPath, domain.ManifestPath(dir)); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", dir))
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(domain.FilePerm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
