package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application, used for the default cache root.
	AppName = "objcache"

	// ManifestFileName is the name of the manifest document inside a cache directory.
	ManifestFileName = ".cache"

	// LockFileName is the name of the advisory lock file inside a cache directory.
	LockFileName = ".cache.lock"

	// DefaultObjectExt is the extension used for cached objects whose original has none.
	DefaultObjectExt = ".o"

	// ConfigFileName is the name of the configuration file looked up in the working directory.
	ConfigFileName = "objcache.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheRoot returns the default cache root, <user cache dir>/objcache.
// It returns ErrCacheRootUnavailable when the user cache directory is unknown.
func DefaultCacheRoot() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return "", ErrCacheRootUnavailable
	}
	return filepath.Join(dir, AppName), nil
}

// ManifestPath returns the path of the manifest document in dir.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFileName)
}

// LockPath returns the path of the lock file in dir.
func LockPath(dir string) string {
	return filepath.Join(dir, LockFileName)
}
