// Package objcache implements the target-scoped compilation object cache.
//
// A Cache is bound to one context at a time. Establish selects the context
// and its cache directory, Lookup answers whether a valid object exists for a
// source, and Store records a freshly compiled object.
package objcache

import (
	"crypto/sha256"
	"errors"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a Cache.
type Options struct {
	// Root is the directory under which cache directories are created.
	Root       string
	Encoding   domain.Encoding
	Validation domain.Validation
	Lock       domain.LockMode
}

// Deps holds the adapters used by a Cache.
type Deps struct {
	Store  ports.ManifestStore
	Probe  ports.FileProbe
	Writer ports.ObjectWriter
	Locker ports.DirLocker
	Logger ports.Logger
}

// Cache is the object cache of one build session. It is safe for concurrent use.
type Cache struct {
	opts Options
	deps Deps

	mu       sync.Mutex
	ctx      domain.Context
	dir      string
	manifest domain.Manifest
	stats    domain.Stats
}

// New creates a Cache. No context is active until Establish succeeds.
func New(opts Options, deps Deps) *Cache {
	if opts.Encoding == "" {
		opts.Encoding = domain.DefaultEncoding
	}
	if opts.Validation == "" {
		opts.Validation = domain.ValidateMtime
	}
	if opts.Lock == "" {
		opts.Lock = domain.LockSingleWriter
	}
	return &Cache{
		opts:     opts,
		deps:     deps,
		manifest: domain.Manifest{},
	}
}

// Establish derives the context for target and definitions, creates its cache
// directory under prefix and loads the directory's manifest.
// On failure the previously active context stays active.
func (c *Cache) Establish(prefix, target string, definitions []string) (domain.Context, error) {
	root := c.opts.Root
	if root == "" {
		var err error
		if root, err = domain.DefaultCacheRoot(); err != nil {
			return domain.Context{}, errors.Join(domain.ErrDirectoryCreationFailed, err)
		}
	}

	if abs, err := filepath.Abs(prefix); err == nil {
		prefix = abs
	}

	ctx := domain.DeriveContext(target, definitions, c.opts.Encoding)
	dir := filepath.Join(root, domain.DirName(ctx, prefix, c.opts.Encoding))

	if err := c.deps.Writer.MakeDir(dir); err != nil {
		return domain.Context{}, errors.Join(domain.ErrDirectoryCreationFailed, err)
	}

	m, err := c.deps.Store.Load(dir)
	if err != nil {
		c.deps.Logger.Warn("manifest unavailable, starting empty", "dir", dir, "error", err.Error())
		m = domain.Manifest{}
	}

	c.mu.Lock()
	c.ctx = ctx
	c.dir = dir
	c.manifest = m
	c.mu.Unlock()

	c.deps.Logger.Debug("context established",
		"target", target, "context", ctx.Hash, "dir", dir, "entries", len(m))

	return ctx, nil
}

// Context returns the active context. It is zero before Establish.
func (c *Cache) Context() domain.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

// Dir returns the active cache directory. It is empty before Establish.
func (c *Cache) Dir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dir
}

// Stats returns the operation counters of this Cache.
func (c *Cache) Stats() domain.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Lookup reports the cached object for source when its entry is still valid.
// The only error is domain.ErrNoContext.
func (c *Cache) Lookup(source string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.IsZero() {
		return "", false, domain.ErrNoContext
	}

	source = absPath(source)
	entry, ok := c.manifest[domain.ManifestKey(c.ctx.Hash, source)]
	if !ok {
		c.stats.Misses++
		c.deps.Logger.Debug("cache miss", "source", source, "reason", "not cached")
		return "", false, nil
	}

	if reason := c.staleReason(source, entry); reason != "" {
		c.stats.Misses++
		c.deps.Logger.Debug("cache miss", "source", source, "reason", reason)
		return "", false, nil
	}

	c.stats.Hits++
	c.deps.Logger.Debug("cache hit", "source", source, "object", entry.ObjectPath)
	return entry.ObjectPath, true, nil
}

// Store copies object into the cache directory and records it as the
// compilation of source depending on headers.
// Any failure wraps domain.ErrStorageFailure and leaves the manifest unchanged.
func (c *Cache) Store(source, object string, headers []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.IsZero() {
		return domain.ErrNoContext
	}

	source = absPath(source)
	object = absPath(object)

	entry, err := c.snapshot(source, headers)
	if err != nil {
		return storageFailure(err, source)
	}

	entry.ObjectPath, err = c.deps.Writer.CopyInto(object, c.dir, c.objectName(source, object))
	if err != nil {
		return storageFailure(err, source)
	}
	entry.StoredAt = time.Now().UTC()

	key := domain.ManifestKey(c.ctx.Hash, source)
	next, err := c.persist(key, entry)
	if err != nil {
		return storageFailure(err, source)
	}

	c.manifest = next
	c.stats.Stores++
	c.deps.Logger.Debug("stored object",
		"source", source, "object", entry.ObjectPath, "headers", len(entry.HeaderMtimes))

	return nil
}

// Entries returns the entries of the active context sorted by source, with live validity.
func (c *Cache) Entries() ([]domain.EntryStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.IsZero() {
		return nil, domain.ErrNoContext
	}

	var out []domain.EntryStatus
	for key, entry := range c.manifest {
		ctxHash, source, ok := domain.SplitManifestKey(key)
		if !ok || ctxHash != c.ctx.Hash {
			continue
		}
		reason := c.staleReason(source, entry)
		out = append(out, domain.EntryStatus{
			Source: source,
			Entry:  entry,
			Valid:  reason == "",
			Reason: reason,
		})
	}

	slices.SortFunc(out, func(a, b domain.EntryStatus) int {
		return strings.Compare(a.Source, b.Source)
	})

	return out, nil
}

// persist writes the manifest with entry stored under key and returns the
// manifest that is now on disk. Callers must hold mu.
func (c *Cache) persist(key string, entry domain.Entry) (domain.Manifest, error) {
	if c.opts.Lock != domain.LockLocked {
		next := c.manifest.Clone()
		next[key] = entry
		if err := c.deps.Store.Save(c.dir, next); err != nil {
			return nil, err
		}
		return next, nil
	}

	unlock, err := c.deps.Locker.Lock(c.dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			c.deps.Logger.Warn("failed to release cache lock", "dir", c.dir, "error", err.Error())
		}
	}()

	// Entries stored by other processes since Establish are kept.
	next, err := c.deps.Store.Load(c.dir)
	if err != nil {
		c.deps.Logger.Warn("manifest unavailable, merging into empty", "dir", c.dir, "error", err.Error())
		next = domain.Manifest{}
	}
	next = next.Clone()
	next[key] = entry

	if err := c.deps.Store.Save(c.dir, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (c *Cache) objectName(source, object string) string {
	sum := sha256.Sum256([]byte(source))
	ext := filepath.Ext(object)
	if ext == "" {
		ext = domain.DefaultObjectExt
	}
	return c.opts.Encoding.Encode(sum[:]) + ext
}

func storageFailure(err error, source string) error {
	return errors.Join(domain.ErrStorageFailure, zerr.With(err, "source", source))
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// snapshot records the live state of source and headers.
func (c *Cache) snapshot(source string, headers []string) (domain.Entry, error) {
	content := c.opts.Validation == domain.ValidateContent

	paths := make([]string, 0, len(headers))
	for _, h := range headers {
		paths = append(paths, absPath(h))
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	type state struct {
		mtime  int64
		digest string
	}
	// Index 0 is the source, followed by the headers.
	files := append([]string{source}, paths...)
	states := make([]state, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			mtime, err := c.deps.Probe.ModTime(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to stat dependency"), "path", path)
			}
			states[i].mtime = mtime

			if content {
				digest, err := c.deps.Probe.Digest(path)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to digest dependency"), "path", path)
				}
				states[i].digest = digest
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Entry{}, err
	}

	entry := domain.Entry{SourceMtime: states[0].mtime}
	if len(paths) > 0 {
		entry.HeaderMtimes = make(map[string]int64, len(paths))
	}
	if content {
		entry.SourceDigest = states[0].digest
		if len(paths) > 0 {
			entry.HeaderDigests = make(map[string]string, len(paths))
		}
	}
	for i, path := range paths {
		st := states[i+1]
		entry.HeaderMtimes[path] = st.mtime
		if content {
			entry.HeaderDigests[path] = st.digest
		}
	}

	return entry, nil
}
