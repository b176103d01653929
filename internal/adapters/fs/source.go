package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Discoverer   = (*Source)(nil)
	_ ports.SourceReader = (*Source)(nil)
)

// Source discovers and reads Markdown documents from a content directory.
type Source struct {
	walker *Walker
}

// NewSource creates a new Source backed by walker.
func NewSource(walker *Walker) *Source {
	return &Source{walker: walker}
}

// Discover returns the keys of every non-hidden Markdown file under root,
// sorted. A missing root yields no keys.
func (s *Source) Discover(root string) ([]domain.Key, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return []domain.Key{}, nil
	}

	keys := make([]domain.Key, 0)
	for path, err := range s.walker.WalkFiles(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrContentDiscoveryFailed.Error()), "root", root)
		}
		if !strings.EqualFold(filepath.Ext(path), domain.SourceExt) {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrContentDiscoveryFailed.Error()), "path", path)
		}
		keys = append(keys, domain.NewKey(filepath.ToSlash(rel)))
	}

	slices.SortFunc(keys, domain.Key.Compare)
	return keys, nil
}

// ReadSource returns the raw content of the document at key under root.
func (s *Source) ReadSource(root string, key domain.Key) ([]byte, error) {
	path := filepath.Join(root, filepath.FromSlash(key.String()))
	//nolint:gosec // Path is built from a discovered key below the content root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "key", key.String())
	}
	return data, nil
}
