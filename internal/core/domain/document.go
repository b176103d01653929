// Package domain contains the core domain models for the content pipeline.
package domain

import (
	"slices"
	"time"
)

// Metadata is the structured record parsed from a document's frontmatter.
type Metadata struct {
	// Title is the human-readable title of the document.
	Title string
	// Tags are the category labels in the order they were declared.
	Tags []string
	// Published is the publish timestamp with an explicit location.
	Published time.Time
	// LinkText is an optional secondary display label for Link.
	LinkText string
	// Link is the canonical external link of the document.
	Link string
}

// Document is a parsed source document.
// A Document is never mutated once stored; replacing it requires a new Set on the same key.
type Document struct {
	Key      Key
	Metadata Metadata
	Body     string
}

// Clone returns a copy of the document that shares no mutable state with the receiver.
func (d Document) Clone() Document {
	c := d
	c.Metadata.Tags = slices.Clone(d.Metadata.Tags)
	return c
}

// Equal reports whether two documents carry the same value.
func (d Document) Equal(other Document) bool {
	return d.Key == other.Key &&
		d.Body == other.Body &&
		d.Metadata.Title == other.Metadata.Title &&
		d.Metadata.Link == other.Metadata.Link &&
		d.Metadata.LinkText == other.Metadata.LinkText &&
		d.Metadata.Published.Equal(other.Metadata.Published) &&
		slices.Equal(d.Metadata.Tags, other.Metadata.Tags)
}
