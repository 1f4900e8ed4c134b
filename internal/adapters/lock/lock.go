// Package lock implements cross-process serialization of cache directory updates.
package lock

import (
	"errors"

	"github.com/gofrs/flock"
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.DirLocker = (*FileLocker)(nil)
	_ ports.DirLocker = (*NopLocker)(nil)
)

// FileLocker takes an advisory lock on the lock file of a cache directory.
type FileLocker struct{}

// NewFileLocker creates a new FileLocker.
func NewFileLocker() *FileLocker {
	return &FileLocker{}
}

// Lock blocks until the advisory lock of dir is held.
func (l *FileLocker) Lock(dir string) (func() error, error) {
	path := domain.LockPath(dir)
	fl := flock.New(path)

	if err := fl.Lock(); err != nil {
		return nil, errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "flock"), "path", path))
	}

	return func() error {
		if err := fl.Unlock(); err != nil {
			return errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "unlock"), "path", path))
		}
		return nil
	}, nil
}

// NopLocker performs no locking. It backs the single-writer mode.
type NopLocker struct{}

// NewNopLocker creates a new NopLocker.
func NewNopLocker() *NopLocker {
	return &NopLocker{}
}

// Lock returns immediately.
func (l *NopLocker) Lock(_ string) (func() error, error) {
	return func() error { return nil }, nil
}

// New returns the locker implementing mode.
func New(mode domain.LockMode) ports.DirLocker {
	if mode == domain.LockLocked {
		return NewFileLocker()
	}
	return NewNopLocker()
}
