package domain

import "time"

// DerivationName names a memoized derivation.
type DerivationName string

const (
	// DeriveRender renders the document body to sanitized markup.
	DeriveRender DerivationName = "render"
	// DeriveTags normalizes the document's category labels.
	DeriveTags DerivationName = "tags"
	// DeriveExcerpt extracts a short plain-text excerpt from the rendered markup.
	DeriveExcerpt DerivationName = "excerpt"
	// DerivePermalink computes the public URL path of the document.
	DerivePermalink DerivationName = "permalink"
	// DeriveFeedItem assembles a syndication entry for the document.
	DeriveFeedItem DerivationName = "feed_item"
)

const (
	// ExcerptLength is the number of runes kept in an excerpt.
	ExcerptLength = 140
	// ExcerptSuffix is appended to every excerpt.
	ExcerptSuffix = "..."
)

// Markup is sanitized, render-ready HTML.
type Markup string

// FeedItem is one syndication entry.
type FeedItem struct {
	Key   Key
	Title string
	// Link is the canonical absolute link of the entry.
	Link string
	// GUID is the absolute URL of the entry's page on the site.
	GUID string
	// PubDate is Published formatted as RFC 1123Z, which is RFC 2822 compatible.
	PubDate   string
	Published time.Time
	Excerpt   string
	Content   Markup
}
