package rss

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one feed entry in the minimal shape the watcher needs.
// GUID falls back to the link when the feed omits one.
type Item struct {
	GUID        string
	Title       string
	Link        string
	PublishedAt *time.Time
}

// Fetcher retrieves and normalizes RSS/Atom feeds for the watcher.
type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		parser: gofeed.NewParser(),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("feed fetch failed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		guid := entry.GUID
		if guid == "" {
			guid = entry.Link
		}
		if guid == "" {
			continue
		}
		items = append(items, Item{
			GUID:        guid,
			Title:       entry.Title,
			Link:        entry.Link,
			PublishedAt: entry.PublishedParsed,
		})
	}
	return items, nil
}
