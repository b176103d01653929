package ports

import (
	"time"

	"go.trai.ch/quill/internal/core/domain"
)

// Discoverer finds source documents under a content root.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Discoverer interface {
	// Discover returns the keys of every source document under root.
	// The order of the returned keys carries no meaning.
	Discover(root string) ([]domain.Key, error)
}

// SourceReader reads the raw bytes of a source document.
type SourceReader interface {
	// ReadSource returns the content of the document at key under root.
	ReadSource(root string, key domain.Key) ([]byte, error)
}

// DocumentParser turns raw source bytes into a Document.
type DocumentParser interface {
	// Parse splits frontmatter from body and decodes the metadata.
	// Dates without a zone are read in loc. Failures wrap domain.ErrParseFailed.
	Parse(key domain.Key, raw []byte, loc *time.Location) (domain.Document, error)
}
