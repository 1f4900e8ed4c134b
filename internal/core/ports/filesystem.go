package ports

// FileProbe defines the interface for observing the live state of files.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileProbe interface {
	// ModTime returns the modification time of path in UnixNano.
	ModTime(path string) (int64, error)

	// Digest returns a content digest of path.
	Digest(path string) (string, error)

	// Exists reports whether path exists.
	Exists(path string) bool
}

// ObjectWriter defines the interface for placing object files into a cache directory.
type ObjectWriter interface {
	// MakeDir creates dir and any missing parents.
	MakeDir(dir string) error

	// CopyInto copies the file at src to dir/name, replacing any previous file with that name.
	// It returns the absolute path of the copy.
	CopyInto(src, dir, name string) (string, error)
}
