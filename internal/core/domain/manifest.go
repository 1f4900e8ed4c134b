package domain

import (
	"maps"
	"strings"
	"time"
)

// keySeparator splits the context hash from the source path in a manifest key.
// No Encoding produces it.
const keySeparator = ":"

// Entry records the provenance of one cached compilation.
type Entry struct {
	// SourceMtime is the source modification time in UnixNano at insertion.
	SourceMtime int64 `json:"source_mtime"`
	// ObjectPath is the cached copy of the object, inside the cache directory.
	ObjectPath string `json:"object_path"`
	// HeaderMtimes maps every included header to its modification time in UnixNano.
	HeaderMtimes map[string]int64 `json:"header_mtimes,omitzero"`
	// SourceDigest is the content digest of the source. Only recorded in content validation mode.
	SourceDigest string `json:"source_digest,omitzero"`
	// HeaderDigests maps headers to content digests. Only recorded in content validation mode.
	HeaderDigests map[string]string `json:"header_digests,omitzero"`
	// StoredAt is the time of insertion.
	StoredAt time.Time `json:"stored_at,omitzero"`
}

// Manifest maps context-qualified source paths to entries.
type Manifest map[string]Entry

// ManifestKey returns the manifest key of source under the context hash.
func ManifestKey(contextHash, source string) string {
	return contextHash + keySeparator + source
}

// SplitManifestKey splits a manifest key into context hash and source path.
func SplitManifestKey(key string) (contextHash, source string, ok bool) {
	return strings.Cut(key, keySeparator)
}

// Clone returns a shallow copy of the manifest. Entries are values and their maps are never mutated in place.
func (m Manifest) Clone() Manifest {
	if m == nil {
		return Manifest{}
	}
	return maps.Clone(m)
}

// EntryStatus describes an entry of the active context and its live validity.
type EntryStatus struct {
	Source string
	Entry  Entry
	// Valid reports whether a lookup would currently hit.
	Valid bool
	// Reason explains why the entry is stale. Empty when Valid.
	Reason string
}

// Stats counts cache operations of one Cache instance.
type Stats struct {
	Hits   int
	Misses int
	Stores int
}
