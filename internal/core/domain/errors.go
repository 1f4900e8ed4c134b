package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestUnavailable is returned when a manifest exists but cannot be parsed.
	// The cache recovers from it by starting with an empty manifest.
	ErrManifestUnavailable = zerr.New("manifest unavailable")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestMarshalFailed is returned when the manifest cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrStorageFailure is returned when an object cannot be inserted into the cache.
	ErrStorageFailure = zerr.New("failed to store object")

	// ErrDirectoryCreationFailed is returned when the cache directory of a context cannot be created.
	ErrDirectoryCreationFailed = zerr.New("failed to create cache directory")

	// ErrNoContext is returned when a lookup or store is attempted before a context is established.
	ErrNoContext = zerr.New("no cache context established")

	// ErrCacheMiss is returned when a requested object is not found in the cache.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrLockFailed is returned when the advisory lock of a cache directory cannot be acquired or released.
	ErrLockFailed = zerr.New("failed to lock cache directory")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrObjectCopyFailed is returned when an object file cannot be copied into the cache directory.
	ErrObjectCopyFailed = zerr.New("failed to copy object file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is not recognized.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrCacheRootUnavailable is returned when no cache root is configured and none can be derived.
	ErrCacheRootUnavailable = zerr.New("cache root could not be determined")

	// ErrHeadersFileReadFailed is returned when a header list file cannot be read.
	ErrHeadersFileReadFailed = zerr.New("failed to read headers file")
)
