// Package aggregate implements read-only projections over the whole document set.
package aggregate

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader is the part of the document database the projections read.
type Reader interface {
	Get(key domain.Key) (domain.Document, error)
	Tags(ctx context.Context, key domain.Key) ([]string, error)
	FeedItem(ctx context.Context, key domain.Key) (domain.FeedItem, error)
}

type options struct {
	tieBreak domain.TieBreak
}

// Option configures ordering.
type Option func(*options)

// WithTieBreak sets how documents with equal timestamps are ordered.
func WithTieBreak(tb domain.TieBreak) Option {
	return func(o *options) {
		o.tieBreak = tb
	}
}

func newOptions(opts []Option) options {
	o := options{tieBreak: domain.TieBreakKeyAsc}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MostRecent returns the n documents with the latest publish timestamps, newest
// first. Equal timestamps are ordered by key. Fewer than n keys yields all of them.
func MostRecent(db Reader, n int, keys []domain.Key, opts ...Option) ([]domain.Document, error) {
	if n <= 0 {
		return []domain.Document{}, nil
	}
	docs, err := load(db, keys)
	if err != nil {
		return nil, err
	}
	SortRecent(docs, opts...)
	return docs[:min(n, len(docs))], nil
}

// SortRecent orders docs newest first using the configured tie-break.
func SortRecent(docs []domain.Document, opts ...Option) {
	o := newOptions(opts)
	slices.SortStableFunc(docs, func(a, b domain.Document) int {
		if c := b.Metadata.Published.Compare(a.Metadata.Published); c != 0 {
			return c
		}
		if o.tieBreak == domain.TieBreakKeyDesc {
			return b.Key.Compare(a.Key)
		}
		return a.Key.Compare(b.Key)
	})
}

// GroupByCategory maps each category label to the documents carrying it,
// preserving the order of keys within every group. Documents without labels
// appear in no group.
func GroupByCategory(ctx context.Context, db Reader, keys []domain.Key) (domain.Groups, error) {
	groups := make(domain.Groups)
	for _, key := range keys {
		doc, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		tags, err := db.Tags(ctx, key)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			groups[tag] = append(groups[tag], doc)
		}
	}
	return groups, nil
}

// BuildFeed returns one syndication entry per document, newest first.
// Every document is checked for a title and a link before any entry is built;
// the first violation fails the whole feed with domain.ErrFeedBuild.
func BuildFeed(ctx context.Context, db Reader, keys []domain.Key, opts ...Option) ([]domain.FeedItem, error) {
	docs, err := load(db, keys)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if err := validateFeedFields(doc); err != nil {
			return nil, err
		}
	}

	SortRecent(docs, opts...)
	items := make([]domain.FeedItem, 0, len(docs))
	for _, doc := range docs {
		item, err := db.FeedItem(ctx, doc.Key)
		if err != nil {
			return nil, domain.Annotate(errors.Join(domain.ErrFeedBuild, err), "key", doc.Key.String())
		}
		items = append(items, item)
	}
	return items, nil
}

func validateFeedFields(doc domain.Document) error {
	switch {
	case strings.TrimSpace(doc.Metadata.Title) == "":
		return feedError(doc.Key, "title")
	case strings.TrimSpace(doc.Metadata.Link) == "":
		return feedError(doc.Key, "link")
	}
	return nil
}

func feedError(key domain.Key, field string) error {
	err := domain.Annotate(domain.ErrFeedBuild, "key", key.String())
	return zerr.With(err, "field", field)
}

func load(db Reader, keys []domain.Key) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(keys))
	for _, key := range keys {
		doc, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
