package domain

import (
	"crypto/sha256"
	"path/filepath"
	"slices"
	"strings"
)

// tokenSeparator precedes every token of a context or identity string.
// NUL cannot occur in a target name or a preprocessor definition passed on a command line.
const tokenSeparator = "\x00"

// Context identifies one build configuration: a target and the set of
// preprocessor definitions that change the object code independently of the source.
type Context struct {
	// Target is the build target identifier, e.g. a device or architecture name.
	Target string
	// Definitions is the deduplicated, sorted set of definition tokens.
	Definitions []string
	// Hash is the encoded digest of Target and Definitions.
	Hash string
}

// DeriveContext computes the context for target and definitions.
// The result does not depend on the order of definitions, and duplicates are ignored.
func DeriveContext(target string, definitions []string, enc Encoding) Context {
	defs := canonicalize(definitions)

	var b strings.Builder
	b.WriteString(tokenSeparator)
	b.WriteString(target)
	for _, d := range defs {
		b.WriteString(tokenSeparator)
		b.WriteString(d)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return Context{
		Target:      target,
		Definitions: defs,
		Hash:        enc.Encode(sum[:]),
	}
}

// IsZero reports whether the context has not been derived.
func (c Context) IsZero() bool {
	return c.Hash == ""
}

// DirName returns the name of the cache directory for the context under prefix.
// It joins the context hash, a hash of prefix and target, and the base name of prefix.
func DirName(c Context, prefix string, enc Encoding) string {
	sum := sha256.Sum256([]byte(prefix + tokenSeparator + c.Target))
	return c.Hash + "_" + enc.Encode(sum[:]) + "_" + prefixBase(prefix)
}

// prefixBase returns the last element of prefix, or "root" when prefix has none.
func prefixBase(prefix string) string {
	base := filepath.Base(filepath.Clean(prefix))
	if base == "." || base == string(filepath.Separator) {
		return "root"
	}
	return base
}

func canonicalize(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}
