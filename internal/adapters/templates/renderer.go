// Package templates lays out the HTML pages of a site.
package templates

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed layouts/*.html
var layouts embed.FS

const (
	pagePost     = "post"
	pageIndex    = "index"
	pageTag      = "tag"
	pageTagIndex = "tags"
)

var _ ports.PageRenderer = (*Renderer)(nil)

// Renderer implements ports.PageRenderer with html/template.
type Renderer struct {
	pages map[string]*template.Template
}

type pageData struct {
	Site  *domain.Site
	Title string
	Post  domain.PostPage
	Posts []domain.PostPage
	Tag   string
	Tags  []domain.TagSummary
}

// NewRenderer parses the embedded layouts.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"join":        strings.Join,
		"tagURL":      domain.TagURL,
		"tagIndexURL": func() string { return "/" + domain.TagIndexPath() },
		"feedURL":     func(s *domain.Site) string { return "/" + strings.TrimLeft(s.Feed.Path, "/") },
		"isoDate":     func(t time.Time) string { return t.Format(time.RFC3339) },
		"displayDate": func(t time.Time) string { return t.Format("January 2, 2006") },
		// Markup is sanitized when it is rendered.
		"markup": func(m domain.Markup) template.HTML { return template.HTML(m) }, //nolint:gosec // sanitized markup
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{pagePost, pageIndex, pageTag, pageTagIndex} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(layouts, "layouts/base.html", "layouts/"+page+".html")
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error()), "page", page)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Post implements ports.PageRenderer.
func (r *Renderer) Post(site *domain.Site, post domain.PostPage) ([]byte, error) {
	return r.execute(pagePost, pageData{
		Site:  site,
		Title: post.Document.Metadata.Title,
		Post:  post,
	})
}

// Index implements ports.PageRenderer.
func (r *Renderer) Index(site *domain.Site, recent []domain.PostPage) ([]byte, error) {
	return r.execute(pageIndex, pageData{
		Site:  site,
		Title: site.Title,
		Posts: recent,
	})
}

// Tag implements ports.PageRenderer.
func (r *Renderer) Tag(site *domain.Site, tag string, posts []domain.PostPage) ([]byte, error) {
	return r.execute(pageTag, pageData{
		Site:  site,
		Title: tag + " | " + site.Title,
		Tag:   tag,
		Posts: posts,
	})
}

// TagIndex implements ports.PageRenderer.
func (r *Renderer) TagIndex(site *domain.Site, tags []domain.TagSummary) ([]byte, error) {
	return r.execute(pageTagIndex, pageData{
		Site:  site,
		Title: "Tags | " + site.Title,
		Tags:  tags,
	})
}

func (r *Renderer) execute(page string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pages[page].ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error()), "page", page)
	}
	return buf.Bytes(), nil
}
