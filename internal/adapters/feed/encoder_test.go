package feed_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/feed"
	"go.trai.ch/quill/internal/core/domain"
)

type rssDoc struct {
	Channel struct {
		Title   string `xml:"title"`
		Link    string `xml:"link"`
		PubDate string `xml:"pubDate"`
		Items   []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			GUID        string `xml:"guid"`
			PubDate     string `xml:"pubDate"`
			Description string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

func testSite(feedPath string) *domain.Site {
	return &domain.Site{
		Title:       "Quill",
		Description: "Notes",
		Author:      "Ada",
		BaseURL:     "https://example.com",
		Feed:        domain.FeedSettings{Enabled: true, Path: feedPath},
	}
}

func testItems() []domain.FeedItem {
	newer := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.FeedItem{
		{
			Title:     "B",
			Link:      "https://b.example",
			GUID:      "https://example.com/posts/b.html",
			PubDate:   newer.Format(time.RFC1123Z),
			Published: newer,
			Excerpt:   "bravo...",
			Content:   "<p>bravo</p>",
		},
		{
			Title:     "A",
			GUID:      "https://example.com/posts/a.html",
			PubDate:   older.Format(time.RFC1123Z),
			Published: older,
			Excerpt:   "alpha...",
			Content:   "<p>alpha</p>",
		},
	}
}

func TestEncoder_Encode_RSS(t *testing.T) {
	t.Parallel()

	out, err := feed.NewEncoder().Encode(testSite(domain.DefaultFeedPath), testItems())
	require.NoError(t, err)

	var doc rssDoc
	require.NoError(t, xml.Unmarshal(out, &doc))

	assert.Equal(t, "Quill", doc.Channel.Title)
	assert.Equal(t, "https://example.com/", doc.Channel.Link)
	assert.Equal(t, "Fri, 01 Mar 2024 08:30:00 +0000", doc.Channel.PubDate)
	require.Len(t, doc.Channel.Items, 2)

	first := doc.Channel.Items[0]
	assert.Equal(t, "B", first.Title)
	assert.Equal(t, "https://b.example", first.Link)
	assert.Equal(t, "https://example.com/posts/b.html", first.GUID)
	assert.Equal(t, "Fri, 01 Mar 2024 08:30:00 +0000", first.PubDate)
	assert.Equal(t, "bravo...", first.Description)

	assert.Equal(t, "https://example.com/posts/a.html", doc.Channel.Items[1].Link)
}

func TestEncoder_Encode_Deterministic(t *testing.T) {
	t.Parallel()

	enc := feed.NewEncoder()
	first, err := enc.Encode(testSite(domain.DefaultFeedPath), testItems())
	require.NoError(t, err)
	second, err := enc.Encode(testSite(domain.DefaultFeedPath), testItems())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncoder_Encode_Empty(t *testing.T) {
	t.Parallel()

	out, err := feed.NewEncoder().Encode(testSite(domain.DefaultFeedPath), nil)
	require.NoError(t, err)

	var doc rssDoc
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Empty(t, doc.Channel.Items)
}

func TestEncoder_Encode_Atom(t *testing.T) {
	t.Parallel()

	out, err := feed.NewEncoder().Encode(testSite("feed.atom"), testItems())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<feed")
	assert.Contains(t, string(out), "http://www.w3.org/2005/Atom")
	assert.Contains(t, string(out), "https://example.com/posts/b.html")
}

func TestEncoder_Encode_JSON(t *testing.T) {
	t.Parallel()

	out, err := feed.NewEncoder().Encode(testSite("feed.json"), testItems())
	require.NoError(t, err)

	var doc struct {
		Title string `json:"title"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "Quill", doc.Title)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "https://example.com/posts/b.html", doc.Items[0].ID)
}
