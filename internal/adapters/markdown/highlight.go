package markdown

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"go.trai.ch/zerr"
)

// DefaultStyle is used when no highlight style is configured.
const DefaultStyle = "base16-snazzy"

// Highlighter renders source code as HTML with inline styles.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter for the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}
}

// Highlight writes code as highlighted HTML to w. An empty or unknown lang
// is guessed from the code, falling back to plain text.
func (h *Highlighter) Highlight(w io.Writer, code, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to tokenise code block"), "lang", lang)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to format code block"), "lang", lang)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
