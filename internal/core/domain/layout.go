package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

const (
	// ConfigFileName is the name of the site configuration file.
	ConfigFileName = "quill.yaml"

	// DefaultContentDir is the directory holding source documents.
	DefaultContentDir = "content"

	// DefaultResourcesDir is the directory holding static files copied verbatim.
	DefaultResourcesDir = "resources"

	// DefaultPublicDir is the directory the site is written to.
	DefaultPublicDir = "public"

	// DefaultPostsPrefix is the URL prefix of document pages.
	DefaultPostsPrefix = "/posts"

	// DefaultFeedPath is the feed location relative to the public directory.
	DefaultFeedPath = "rss.xml"

	// DefaultRecent is the number of documents shown on the index page.
	DefaultRecent = 5

	// TagsDirName is the directory holding tag pages.
	TagsDirName = "tags"

	// IndexFileName is the name of directory index pages.
	IndexFileName = "index.html"

	// SourceExt is the extension of source documents.
	SourceExt = ".md"

	// PageExt is the extension of generated pages.
	PageExt = ".html"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TagSlug returns the file name stem used for the pages of tag. Tags made of
// lowercase letters, digits, '-' and '_' are used as is. Any other tag, and
// the reserved name "index", is reduced to those runes and suffixed with a
// hash of the original label so distinct tags never share a page.
func TagSlug(tag string) string {
	if isPlainSlug(tag) && tag+PageExt != IndexFileName {
		return tag
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(tag) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	base := strings.TrimRight(b.String(), "-")
	sum := fmt.Sprintf("%08x", uint32(xxhash.Sum64String(tag))) //nolint:gosec // truncation intended
	if base == "" {
		return sum
	}
	return base + "-" + sum
}

func isPlainSlug(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// TagPagePath returns the output path of the page listing documents labelled tag.
func TagPagePath(tag string) string {
	return path.Join(TagsDirName, TagSlug(tag)+PageExt)
}

// TagIndexPath returns the output path of the page listing every tag.
func TagIndexPath() string {
	return path.Join(TagsDirName, IndexFileName)
}

// TagURL returns the public URL path of a tag page.
func TagURL(tag string) string {
	return "/" + TagsDirName + "/" + url.PathEscape(TagSlug(tag)+PageExt)
}
