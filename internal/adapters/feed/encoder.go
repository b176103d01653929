// Package feed encodes syndication documents.
package feed

import (
	"path"
	"strings"

	"github.com/gorilla/feeds"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FeedEncoder = (*Encoder)(nil)

// Encoder writes RSS 2.0 by default. A feed path ending in ".atom" produces
// Atom and one ending in ".json" produces JSON Feed.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements ports.FeedEncoder.
func (e *Encoder) Encode(site *domain.Site, items []domain.FeedItem) ([]byte, error) {
	f := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: site.AbsoluteURL("/")},
		Description: site.Description,
		Items:       make([]*feeds.Item, 0, len(items)),
	}
	if site.Author != "" {
		f.Author = &feeds.Author{Name: site.Author}
	}

	for _, it := range items {
		// Channel dates follow the newest item.
		if it.Published.After(f.Updated) {
			f.Updated = it.Published
			f.Created = it.Published
		}
		link := it.Link
		if link == "" {
			link = it.GUID
		}
		f.Items = append(f.Items, &feeds.Item{
			Title:       it.Title,
			Link:        &feeds.Link{Href: link},
			Description: it.Excerpt,
			Id:          it.GUID,
			IsPermaLink: "true",
			Created:     it.Published,
			Content:     string(it.Content),
		})
	}

	var (
		out string
		err error
	)
	switch strings.ToLower(path.Ext(site.Feed.Path)) {
	case ".atom":
		out, err = f.ToAtom()
	case ".json":
		out, err = f.ToJSON()
	default:
		out, err = f.ToRss()
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFeedEncodeFailed.Error()), "path", site.Feed.Path)
	}
	return []byte(out), nil
}
