package objcache

import (
	"maps"
	"slices"

	"go.trai.ch/objcache/internal/core/domain"
)

// staleReason returns why entry no longer describes source, or "" when it is valid.
func (c *Cache) staleReason(source string, entry domain.Entry) string {
	probe := c.deps.Probe

	mtime, err := probe.ModTime(source)
	if err != nil {
		return "source missing"
	}
	if mtime != entry.SourceMtime {
		return "source modified"
	}

	headers := slices.Sorted(maps.Keys(entry.HeaderMtimes))
	for _, h := range headers {
		mtime, err := probe.ModTime(h)
		if err != nil {
			return "header missing: " + h
		}
		if mtime != entry.HeaderMtimes[h] {
			return "header modified: " + h
		}
	}

	if !probe.Exists(entry.ObjectPath) {
		return "object missing"
	}

	if c.opts.Validation == domain.ValidateContent {
		return c.contentReason(source, entry, headers)
	}
	return ""
}

func (c *Cache) contentReason(source string, entry domain.Entry, headers []string) string {
	if entry.SourceDigest == "" || len(entry.HeaderDigests) != len(headers) {
		return "no content digest"
	}

	digest, err := c.deps.Probe.Digest(source)
	if err != nil || digest != entry.SourceDigest {
		return "source content changed"
	}
	for _, h := range headers {
		digest, err := c.deps.Probe.Digest(h)
		if err != nil || digest != entry.HeaderDigests[h] {
			return "header content changed: " + h
		}
	}
	return ""
}
