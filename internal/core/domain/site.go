package domain

import (
	"path"
	"strings"
	"time"
)

// LinkStyle selects how public URLs for documents are formed.
type LinkStyle string

const (
	// LinkStyleFile links to the generated file, e.g. /posts/hello.html.
	LinkStyleFile LinkStyle = "file"
	// LinkStylePretty links to a directory, e.g. /posts/hello/.
	LinkStylePretty LinkStyle = "pretty"
)

// LinkPolicy maps document keys to public URLs and output paths.
type LinkPolicy struct {
	Style  LinkStyle
	Prefix string
}

// DefaultLinkPolicy returns the file-based policy under DefaultPostsPrefix.
func DefaultLinkPolicy() LinkPolicy {
	return LinkPolicy{Style: LinkStyleFile, Prefix: DefaultPostsPrefix}
}

// Permalink returns the public URL path of the document at key.
func (p LinkPolicy) Permalink(key Key) string {
	base := path.Join("/", p.Prefix, key.Stem())
	if p.Style == LinkStylePretty {
		return base + "/"
	}
	return base + PageExt
}

// OutputPath returns the slash-separated path, relative to the public directory,
// that the page for key is written to.
func (p LinkPolicy) OutputPath(key Key) string {
	dir := strings.Trim(p.Prefix, "/")
	if p.Style == LinkStylePretty {
		return path.Join(dir, key.Stem(), IndexFileName)
	}
	return path.Join(dir, key.Stem()+PageExt)
}

// TieBreak orders documents that share a publish timestamp.
type TieBreak string

const (
	// TieBreakKeyAsc orders equal timestamps by ascending key.
	TieBreakKeyAsc TieBreak = "key_asc"
	// TieBreakKeyDesc orders equal timestamps by descending key.
	TieBreakKeyDesc TieBreak = "key_desc"
)

// FeedSettings controls the syndication feed output.
type FeedSettings struct {
	Enabled bool
	Path    string
	// Limit caps the number of entries; zero keeps every document.
	Limit int
}

// Site is the resolved configuration of one build.
type Site struct {
	Title       string
	Description string
	Author      string
	BaseURL     string

	// Root is the absolute directory holding the configuration file.
	Root         string
	ContentDir   string
	ResourcesDir string
	PublicDir    string

	Recent   int
	TieBreak TieBreak
	Links    LinkPolicy
	Feed     FeedSettings

	HighlightStyle  string
	RenderCacheSize int
	Location        *time.Location
}

// AbsoluteURL joins a site-relative path onto BaseURL.
func (s *Site) AbsoluteURL(p string) string {
	return AbsoluteURL(s.BaseURL, p)
}

// AbsoluteURL joins p onto base. Paths that already carry a scheme are returned unchanged.
func AbsoluteURL(base, p string) string {
	if strings.Contains(p, "://") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
