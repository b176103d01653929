package domain_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
)

func TestLinkPolicy(t *testing.T) {
	key := domain.NewKey("2024/hello.md")

	tests := []struct {
		name          string
		policy        domain.LinkPolicy
		wantPermalink string
		wantOutput    string
	}{
		{
			name:          "file style",
			policy:        domain.DefaultLinkPolicy(),
			wantPermalink: "/posts/2024/hello.html",
			wantOutput:    "posts/2024/hello.html",
		},
		{
			name:          "pretty style",
			policy:        domain.LinkPolicy{Style: domain.LinkStylePretty, Prefix: "/posts"},
			wantPermalink: "/posts/2024/hello/",
			wantOutput:    "posts/2024/hello/index.html",
		},
		{
			name:          "root prefix",
			policy:        domain.LinkPolicy{Style: domain.LinkStyleFile, Prefix: "/"},
			wantPermalink: "/2024/hello.html",
			wantOutput:    "2024/hello.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPermalink, tt.policy.Permalink(key))
			assert.Equal(t, tt.wantOutput, tt.policy.OutputPath(key))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://example.com", path: "/posts/a.html", want: "https://example.com/posts/a.html"},
		{base: "https://example.com/", path: "posts/a.html", want: "https://example.com/posts/a.html"},
		{base: "https://example.com/blog/", path: "/", want: "https://example.com/blog/"},
		{base: "https://example.com", path: "https://other.org/x", want: "https://other.org/x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AbsoluteURL(tt.base, tt.path))
		})
	}

	site := &domain.Site{BaseURL: "https://example.com"}
	assert.Equal(t, "https://example.com/rss.xml", site.AbsoluteURL("rss.xml"))
}

func TestTagPaths(t *testing.T) {
	assert.Equal(t, "tags/dev.html", domain.TagPagePath("dev"))
	assert.Equal(t, "/tags/dev.html", domain.TagURL("dev"))
	assert.Equal(t, "tags/go_lang-2.html", domain.TagPagePath("go_lang-2"))
	assert.Equal(t, "tags/index.html", domain.TagIndexPath())
}

func TestTagSlug_UnsafeLabels(t *testing.T) {
	tags := []string{"index", "c#", "c", "q?", "hello world", "Hello World", "Dev", "日本", "%"}

	seen := make(map[string]string, len(tags))
	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			page := domain.TagPagePath(tag)
			assert.NotEqual(t, domain.TagIndexPath(), page)

			slug := domain.TagSlug(tag)
			assert.NotContains(t, slug, "/")
			assert.NotEqual(t, ".", slug)
			assert.NotEqual(t, "..", slug)

			u := domain.TagURL(tag)
			assert.True(t, strings.HasPrefix(u, "/tags/"), u)
			assert.NotContains(t, u, "#")
			assert.NotContains(t, u, "?")
			assert.NotContains(t, u, " ")

			unescaped, err := url.PathUnescape(u)
			require.NoError(t, err)
			assert.Equal(t, "/"+page, unescaped, "URL resolves to the written file")
		})

		slug := domain.TagSlug(tag)
		prev, dup := seen[slug]
		assert.False(t, dup, "%q and %q share slug %q", prev, tag, slug)
		seen[slug] = tag
	}

	assert.True(t, strings.HasPrefix(domain.TagSlug("hello world"), "hello-world-"))
	assert.True(t, strings.HasPrefix(domain.TagSlug("index"), "index-"))
}

func TestDocument_CloneAndEqual(t *testing.T) {
	doc := domain.Document{
		Key: domain.NewKey("a.md"),
		Metadata: domain.Metadata{
			Title:     "A",
			Tags:      []string{"dev"},
			Published: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Body: "body",
	}

	clone := doc.Clone()
	assert.True(t, doc.Equal(clone))

	clone.Metadata.Tags[0] = "design"
	assert.Equal(t, "dev", doc.Metadata.Tags[0], "clone shares no tag storage")
	assert.False(t, doc.Equal(clone))

	sameInstant := doc.Clone()
	sameInstant.Metadata.Published = doc.Metadata.Published.In(time.FixedZone("CET", 3600))
	assert.True(t, doc.Equal(sameInstant))
}

func TestGroups(t *testing.T) {
	a := domain.Document{Key: domain.NewKey("a.md")}
	b := domain.Document{Key: domain.NewKey("b.md")}
	g := domain.Groups{
		"web": {a, b},
		"dev": {a},
	}

	assert.Equal(t, []string{"dev", "web"}, g.Labels())
	assert.Equal(t, 3, g.Count())
	assert.Empty(t, domain.Groups{}.Labels())
}
