package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ObjectWriter = (*Copier)(nil)

// Copier places object files into cache directories.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// MakeDir creates dir and any missing parents.
func (c *Copier) MakeDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(err, "path", dir)
	}
	return nil
}

// CopyInto copies src to dir/name through a temporary file in dir,
// so a partially written object never appears under its final name.
func (c *Copier) CopyInto(src, dir, name string) (string, error) {
	dst, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", dir))
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", errors.Join(domain.ErrFileOpenFailed, zerr.With(err, "path", src))
	}
	defer in.Close() //nolint:errcheck // Read-only file

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", dir))
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", src))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", tmpPath))
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", tmpPath))
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Join(domain.ErrObjectCopyFailed, zerr.With(err, "path", dst))
	}

	return dst, nil
}
