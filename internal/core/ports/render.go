package ports

import "go.trai.ch/quill/internal/core/domain"

// MarkupRenderer renders a document body to sanitized markup.
//
//go:generate mockgen -source=render.go -destination=mocks/mock_render.go -package=mocks
type MarkupRenderer interface {
	Render(body string) (domain.Markup, error)
}

// MarkupFactory builds a MarkupRenderer for the settings of a site.
type MarkupFactory interface {
	NewMarkupRenderer(site *domain.Site) (MarkupRenderer, error)
}

// PageRenderer lays out complete HTML pages.
type PageRenderer interface {
	// Post renders the page of a single document.
	Post(site *domain.Site, post domain.PostPage) ([]byte, error)
	// Index renders the landing page listing the most recent documents.
	Index(site *domain.Site, recent []domain.PostPage) ([]byte, error)
	// Tag renders the page listing every document carrying tag.
	Tag(site *domain.Site, tag string, posts []domain.PostPage) ([]byte, error)
	// TagIndex renders the page listing every tag.
	TagIndex(site *domain.Site, tags []domain.TagSummary) ([]byte, error)
}

// FeedEncoder serializes feed items into a syndication document.
type FeedEncoder interface {
	Encode(site *domain.Site, items []domain.FeedItem) ([]byte, error)
}
