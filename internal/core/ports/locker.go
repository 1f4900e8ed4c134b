package ports

// DirLocker defines the interface for serializing manifest updates of a cache directory
// across processes.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type DirLocker interface {
	// Lock blocks until the lock of dir is held and returns the function releasing it.
	Lock(dir string) (unlock func() error, err error)
}
