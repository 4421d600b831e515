package newswire

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>GlobeNewswire Search</title>
    <item>
      <title>Acme Pharma announces semaglutide phase 3 topline results</title>
      <link>https://example.com/acme-semaglutide</link>
      <description>Positive topline data for the GLP-1 program.</description>
      <pubDate>Mon, 24 Aug 2026 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Unrelated industrial equipment recall</title>
      <link>https://example.com/recall</link>
      <description>Forklift recall notice.</description>
    </item>
    <item>
      <title>Biotech weekly roundup</title>
      <link>https://example.com/roundup</link>
      <description>Includes a note on semaglutide pricing.</description>
    </item>
  </channel>
</rss>`

func TestSearchReleasesFiltersByQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "semaglutide", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedFixture)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/search/rss?query=%s")

	releases, err := client.SearchReleases(context.Background(), "semaglutide", 10)
	assert.NoError(t, err)
	assert.Len(t, releases, 2)
	assert.Equal(t, "Acme Pharma announces semaglutide phase 3 topline results", releases[0].Title)
	assert.Equal(t, "GlobeNewswire Search", releases[0].Source)
	assert.NotNil(t, releases[0].PublishedAt)
	assert.Equal(t, "https://example.com/roundup", releases[1].URL)
}

func TestSearchReleasesRespectsMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedFixture)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "?query=%s")

	releases, err := client.SearchReleases(context.Background(), "semaglutide", 1)
	assert.NoError(t, err)
	assert.Len(t, releases, 1)
}

func TestSearchReleasesCachesResponses(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		fmt.Fprint(w, feedFixture)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "?query=%s")

	for i := 0; i < 3; i++ {
		_, err := client.SearchReleases(context.Background(), "semaglutide", 10)
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits))
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name  string
		item  *gofeed.Item
		query string
		want  bool
	}{
		{
			name:  "word in title",
			item:  &gofeed.Item{Title: "Semaglutide trial update"},
			query: "semaglutide obesity",
			want:  true,
		},
		{
			name:  "word in description only",
			item:  &gofeed.Item{Title: "Company update", Description: "new obesity program"},
			query: "semaglutide obesity",
			want:  true,
		},
		{
			name:  "no overlap",
			item:  &gofeed.Item{Title: "Forklift recall", Description: "industrial notice"},
			query: "semaglutide obesity",
			want:  false,
		},
		{
			name:  "short words ignored",
			item:  &gofeed.Item{Title: "an on in"},
			query: "an on in",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesQuery(tt.item, tt.query))
		})
	}
}
