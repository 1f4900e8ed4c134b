// Package fs provides file system adapters for observing and copying files.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProbe = (*Probe)(nil)

// Probe reads modification times and content digests from the local file system.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// ModTime returns the modification time of path in UnixNano.
// The returned error wraps fs.ErrNotExist when path is missing.
func (p *Probe) ModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Join(domain.ErrPathStatFailed, err)
	}
	return info.ModTime().UnixNano(), nil
}

// Digest computes the XXHash of a file's content, rendered as 16 hex digits.
func (p *Probe) Digest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", errors.Join(domain.ErrFileOpenFailed, zerr.With(err, "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errors.Join(domain.ErrFileHashFailed, zerr.With(err, "path", path))
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Exists reports whether path exists.
func (p *Probe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
