package querydb

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

// PlainText returns the text content of markup with runs of whitespace
// collapsed to single spaces. Script and style contents are dropped.
func PlainText(markup domain.Markup) (string, error) {
	z := html.NewTokenizer(strings.NewReader(string(markup)))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", zerr.Wrap(err, "failed to tokenize markup")
			}
			return strings.Join(strings.Fields(b.String()), " "), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if isRawText(name) {
				skip++
			}
			if string(name) == "br" {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawText(name) && skip > 0 {
				skip--
			}
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// blockTags end a run of text, so adjacent blocks do not fuse words.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "th": true, "dt": true, "dd": true,
}

func isRawText(tag []byte) bool {
	s := string(tag)
	return s == "script" || s == "style"
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
