package entity

import (
	"time"

	"github.com/google/uuid"
)

type WatchFeed struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	URL           string
	Label         string
	Active        bool
	LastCheckedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// WatchItem is one feed entry the watcher has already seen. GUID is the feed
// item identity used for diffing.
type WatchItem struct {
	Id          uuid.UUID
	FeedId      uuid.UUID
	GUID        string
	Title       string
	Link        string
	PublishedAt *time.Time
	SeenAt      time.Time
}
