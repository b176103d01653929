package querydb

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

func builtins() map[domain.DerivationName]Func {
	return map[domain.DerivationName]Func{
		domain.DeriveRender:    deriveRender,
		domain.DeriveTags:      deriveTags,
		domain.DeriveExcerpt:   deriveExcerpt,
		domain.DerivePermalink: derivePermalink,
		domain.DeriveFeedItem:  deriveFeedItem,
	}
}

// Render returns the sanitized markup of the document body.
func (db *Database) Render(ctx context.Context, key domain.Key) (domain.Markup, error) {
	return derive[domain.Markup](ctx, db, domain.DeriveRender, key)
}

// Tags returns the normalized category labels of the document.
func (db *Database) Tags(ctx context.Context, key domain.Key) ([]string, error) {
	tags, err := derive[[]string](ctx, db, domain.DeriveTags, key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(tags), nil
}

// Excerpt returns the plain-text excerpt of the rendered document.
func (db *Database) Excerpt(ctx context.Context, key domain.Key) (string, error) {
	return derive[string](ctx, db, domain.DeriveExcerpt, key)
}

// Permalink returns the public URL path of the document.
func (db *Database) Permalink(ctx context.Context, key domain.Key) (string, error) {
	return derive[string](ctx, db, domain.DerivePermalink, key)
}

// FeedItem returns the syndication entry of the document.
func (db *Database) FeedItem(ctx context.Context, key domain.Key) (domain.FeedItem, error) {
	return derive[domain.FeedItem](ctx, db, domain.DeriveFeedItem, key)
}

func derive[T any](ctx context.Context, db *Database, name domain.DerivationName, key domain.Key) (T, error) {
	var zero T
	v, err := db.Derive(ctx, name, key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		err := domain.Annotate(domain.ErrUnexpectedArtifact, "derivation", string(name))
		return zero, zerr.With(err, "type", fmt.Sprintf("%T", v))
	}
	return t, nil
}

func deriveRender(ctx context.Context, db *Database, key domain.Key) (any, error) {
	doc, err := db.Input(ctx, key)
	if err != nil {
		return nil, err
	}
	if db.markup == nil {
		return nil, zerr.Wrap(domain.ErrMarkupRenderFailed, "no markup renderer configured")
	}
	return db.markup.Render(doc.Body)
}

func deriveTags(ctx context.Context, db *Database, key domain.Key) (any, error) {
	doc, err := db.Input(ctx, key)
	if err != nil {
		return nil, err
	}
	return NormalizeTags(doc.Metadata.Tags)
}

// NormalizeTags trims labels, drops empty ones and removes duplicates while
// keeping declaration order. Labels that cannot form a URL path segment fail
// with domain.ErrInvalidTag.
func NormalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if strings.ContainsRune(t, '/') || strings.IndexFunc(t, unicode.IsControl) >= 0 || t == "." || t == ".." {
			return nil, zerr.With(domain.ErrInvalidTag, "tag", t)
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func deriveExcerpt(ctx context.Context, db *Database, key domain.Key) (any, error) {
	markup, err := db.Render(ctx, key)
	if err != nil {
		return nil, err
	}
	text, err := PlainText(markup)
	if err != nil {
		return nil, err
	}
	return Truncate(text, domain.ExcerptLength) + domain.ExcerptSuffix, nil
}

func derivePermalink(ctx context.Context, db *Database, key domain.Key) (any, error) {
	if _, err := db.Input(ctx, key); err != nil {
		return nil, err
	}
	return db.links.Permalink(key), nil
}

func deriveFeedItem(ctx context.Context, db *Database, key domain.Key) (any, error) {
	doc, err := db.Input(ctx, key)
	if err != nil {
		return nil, err
	}
	excerpt, err := db.Excerpt(ctx, key)
	if err != nil {
		return nil, err
	}
	content, err := db.Render(ctx, key)
	if err != nil {
		return nil, err
	}
	permalink, err := db.Permalink(ctx, key)
	if err != nil {
		return nil, err
	}

	item := domain.FeedItem{
		Key:       key,
		Title:     doc.Metadata.Title,
		GUID:      domain.AbsoluteURL(db.baseURL, permalink),
		PubDate:   doc.Metadata.Published.Format(time.RFC1123Z),
		Published: doc.Metadata.Published,
		Excerpt:   excerpt,
		Content:   content,
	}
	if doc.Metadata.Link != "" {
		item.Link = domain.AbsoluteURL(db.baseURL, doc.Metadata.Link)
	}
	return item, nil
}
