package domain

import (
	"path"
	"path/filepath"
	"strings"
	"unique"
)

// Key identifies one source document.
// It holds the slash-separated path of the document relative to the content root,
// interned through unique.Handle so equal keys compare with a single pointer check.
type Key struct {
	h unique.Handle[string]
}

// NewKey creates a Key from a path. The path is cleaned and converted to slash form.
// An empty path yields the zero Key.
func NewKey(p string) Key {
	p = strings.TrimSpace(p)
	if p == "" {
		return Key{}
	}
	p = path.Clean(filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "./")
	return Key{h: unique.Make(p)}
}

// NewKeys creates a Key slice from a string slice.
func NewKeys(paths []string) []Key {
	res := make([]Key, len(paths))
	for i, p := range paths {
		res[i] = NewKey(p)
	}
	return res
}

// IsZero reports whether the key was never set.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String returns the underlying path.
func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return k.h.Value()
}

// Compare orders keys by their path, returning -1, 0 or +1.
func (k Key) Compare(other Key) int {
	return strings.Compare(k.String(), other.String())
}

// Stem returns the path without its extension, e.g. "2024/hello" for "2024/hello.md".
func (k Key) Stem() string {
	s := k.String()
	return strings.TrimSuffix(s, path.Ext(s))
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	*k = NewKey(string(text))
	return nil
}
