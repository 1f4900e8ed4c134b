// Package app implements the application layer for objcache.
package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/objcache/internal/engine/objcache"
	"go.trai.ch/objcache/internal/ui/output"
	"go.trai.ch/objcache/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config *domain.Config
	logger ports.Logger
	deps   objcache.Deps
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	log ports.Logger,
	store ports.ManifestStore,
	probe ports.FileProbe,
	writer ports.ObjectWriter,
	locker ports.DirLocker,
) *App {
	return &App{
		config: cfg,
		logger: log,
		deps: objcache.Deps{
			Store:  store,
			Probe:  probe,
			Writer: writer,
			Locker: locker,
			Logger: log,
		},
	}
}

// ContextOptions selects the build context of a command.
type ContextOptions struct {
	Prefix      string
	Target      string
	Definitions []string
}

// StoreOptions configures the Store method.
type StoreOptions struct {
	ContextOptions
	// Headers are the headers the source includes.
	Headers []string
	// HeadersFile names a file listing further headers, one per line.
	HeadersFile string
}

// KeyResult describes an established context.
type KeyResult struct {
	Hash string
	Dir  string
}

// Key establishes the context and reports its hash and cache directory.
func (a *App) Key(ctx context.Context, opts ContextOptions) (KeyResult, error) {
	cache, err := a.establish(ctx, opts)
	if err != nil {
		return KeyResult{}, err
	}
	return KeyResult{Hash: cache.Context().Hash, Dir: cache.Dir()}, nil
}

// Lookup returns the cached object of source.
// A miss is reported as domain.ErrCacheMiss.
func (a *App) Lookup(ctx context.Context, opts ContextOptions, source string) (string, error) {
	cache, err := a.establish(ctx, opts)
	if err != nil {
		return "", err
	}

	path, hit, err := cache.Lookup(source)
	if err != nil {
		return "", err
	}
	if !hit {
		return "", domain.ErrCacheMiss
	}
	return path, nil
}

// Store records object as the compilation of source.
func (a *App) Store(ctx context.Context, opts StoreOptions, source, object string) error {
	headers := opts.Headers
	if opts.HeadersFile != "" {
		listed, err := ReadHeadersFile(opts.HeadersFile)
		if err != nil {
			return err
		}
		headers = append(append([]string(nil), headers...), listed...)
	}

	cache, err := a.establish(ctx, opts.ContextOptions)
	if err != nil {
		return err
	}

	if err := cache.Store(source, object, headers); err != nil {
		return err
	}

	a.logger.Info("stored object", "source", source, "headers", len(headers))
	return nil
}

// Inspect writes the entries of the context and their validity to w.
func (a *App) Inspect(ctx context.Context, opts ContextOptions, w io.Writer) error {
	cache, err := a.establish(ctx, opts)
	if err != nil {
		return err
	}

	entries, err := cache.Entries()
	if err != nil {
		return err
	}

	return writeEntries(w, cache.Context(), cache.Dir(), entries)
}

func (a *App) establish(ctx context.Context, opts ContextOptions) (*objcache.Cache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cache := objcache.New(objcache.Options{
		Root:       a.config.Root,
		Encoding:   a.config.Encoding,
		Validation: a.config.Validation,
		Lock:       a.config.Lock,
	}, a.deps)

	if _, err := cache.Establish(opts.Prefix, opts.Target, opts.Definitions); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to establish context"), "target", opts.Target)
	}
	return cache, nil
}

func writeEntries(w io.Writer, c domain.Context, dir string, entries []domain.EntryStatus) error {
	out := output.ForData(w)
	valid := out.String(style.Check).Foreground(out.Color(string(style.Green)))
	stale := out.String(style.Cross).Foreground(out.Color(string(style.Red)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "context:\t%s\n", c.Hash)
	_, _ = fmt.Fprintf(tw, "target:\t%s\n", c.Target)
	_, _ = fmt.Fprintf(tw, "dir:\t%s\n", dir)
	_, _ = fmt.Fprintf(tw, "entries:\t%d\n", len(entries))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SOURCE\tHEADERS\tSTORED\tSTATUS")
	for _, e := range entries {
		status := valid.String()
		if !e.Valid {
			status = stale.String() + " " + e.Reason
		}
		stored := "-"
		if !e.Entry.StoredAt.IsZero() {
			stored = humanize.Time(e.Entry.StoredAt)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Source, len(e.Entry.HeaderMtimes), stored, status)
	}
	return tw.Flush()
}
