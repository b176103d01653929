// Package markdown renders Markdown bodies to sanitized HTML with highlighted code blocks.
package markdown

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/microcosm-cc/bluemonday"
	gocache "github.com/patrickmn/go-cache"
	"github.com/russross/blackfriday/v2"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.MarkupRenderer = (*Renderer)(nil)
	_ ports.MarkupFactory  = (*Factory)(nil)
)

// Renderer converts Markdown to HTML, highlights fenced code and strips
// anything unsafe from the result. Results are cached by body hash.
type Renderer struct {
	highlighter *Highlighter
	policy      *bluemonday.Policy
	cache       *gocache.Cache
	cacheSize   int
}

// NewRenderer creates a Renderer using the named highlight style.
// cacheSize bounds the number of cached results; zero means unbounded.
func NewRenderer(style string, cacheSize int) *Renderer {
	return &Renderer{
		highlighter: NewHighlighter(style),
		policy:      newPolicy(),
		cache:       gocache.New(gocache.NoExpiration, 0),
		cacheSize:   cacheSize,
	}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "style").Globally()
	return p
}

// Render implements ports.MarkupRenderer.
func (r *Renderer) Render(body string) (domain.Markup, error) {
	key := fmt.Sprintf("%016x", xxhash.Sum64String(body))
	if cached, ok := r.cache.Get(key); ok {
		if markup, ok := cached.(domain.Markup); ok {
			return markup, nil
		}
	}

	hr := &htmlRenderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		}),
		highlighter: r.highlighter,
	}
	out := blackfriday.Run([]byte(body),
		blackfriday.WithRenderer(hr),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)
	if hr.err != nil {
		return "", zerr.Wrap(hr.err, domain.ErrMarkupRenderFailed.Error())
	}

	markup := domain.Markup(r.policy.SanitizeBytes(out))
	if r.cacheSize <= 0 || r.cache.ItemCount() < r.cacheSize {
		r.cache.Set(key, markup, gocache.NoExpiration)
	}
	return markup, nil
}

// CachedItems reports how many rendered bodies are cached.
func (r *Renderer) CachedItems() int {
	return r.cache.ItemCount()
}

// htmlRenderer replaces fenced code blocks with highlighted HTML.
type htmlRenderer struct {
	*blackfriday.HTMLRenderer
	highlighter *Highlighter
	err         error
}

func (r *htmlRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type != blackfriday.CodeBlock {
		return r.HTMLRenderer.RenderNode(w, node, entering)
	}

	lang := infoLanguage(node.CodeBlockData.Info)
	if err := r.highlighter.Highlight(w, string(node.Literal), lang); err != nil {
		r.err = err
		return blackfriday.Terminate
	}
	return blackfriday.GoToNext
}

func infoLanguage(info []byte) string {
	for i, c := range info {
		if c == ' ' || c == '\t' || c == '{' {
			return string(info[:i])
		}
	}
	return string(info)
}

// Factory builds Renderers from site settings.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewMarkupRenderer implements ports.MarkupFactory.
func (f *Factory) NewMarkupRenderer(site *domain.Site) (ports.MarkupRenderer, error) {
	if site.RenderCacheSize < 0 {
		return nil, domain.Annotate(domain.ErrConfigInvalid, "markup.cache_size", site.RenderCacheSize)
	}
	return NewRenderer(site.HighlightStyle, site.RenderCacheSize), nil
}
