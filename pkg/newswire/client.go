package newswire

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"abcresearch-be/internal/dto"

	"github.com/mmcdole/gofeed"
	gocache "github.com/patrickmn/go-cache"
)

// Client searches press-release wires through their public RSS search
// feeds. Feed results for the same query barely change within minutes,
// so responses are cached in-process.
type Client struct {
	feedURLTemplate string
	parser          *gofeed.Parser
	cache           *gocache.Cache
}

// NewClient takes a feed URL template with one %s placeholder for the
// escaped query.
func NewClient(feedURLTemplate string) *Client {
	return &Client{
		feedURLTemplate: feedURLTemplate,
		parser:          gofeed.NewParser(),
		cache:           gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *Client) SearchReleases(ctx context.Context, query string, maxResults int) ([]dto.PressRelease, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	cacheKey := fmt.Sprintf("%s|%d", query, maxResults)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]dto.PressRelease), nil
	}

	feedURL := fmt.Sprintf(c.feedURLTemplate, url.QueryEscape(query))
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("newswire feed fetch failed: %w", err)
	}

	releases := make([]dto.PressRelease, 0, maxResults)
	for _, item := range feed.Items {
		if len(releases) >= maxResults {
			break
		}
		if !matchesQuery(item, query) {
			continue
		}
		releases = append(releases, dto.PressRelease{
			Title:       item.Title,
			Source:      feed.Title,
			URL:         item.Link,
			PublishedAt: item.PublishedParsed,
			Summary:     item.Description,
		})
	}

	c.cache.Set(cacheKey, releases, gocache.DefaultExpiration)
	return releases, nil
}

// matchesQuery keeps items containing at least one non-trivial query
// word in the title or description. Search feeds can return loosely
// related noise, so this is a coarse second filter.
func matchesQuery(item *gofeed.Item, query string) bool {
	haystack := strings.ToLower(item.Title + " " + item.Description)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
