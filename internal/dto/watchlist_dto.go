package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWatchFeedRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label" validate:"required"`
}

type CreateWatchFeedResponse struct {
	Id uuid.UUID `json:"id"`
}

type WatchFeedResponse struct {
	Id            uuid.UUID  `json:"id"`
	URL           string     `json:"url"`
	Label         string     `json:"label"`
	Active        bool       `json:"active"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type WatchItemResponse struct {
	Id          uuid.UUID  `json:"id"`
	FeedId      uuid.UUID  `json:"feed_id"`
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	PublishedAt *time.Time `json:"published_at"`
	SeenAt      time.Time  `json:"seen_at"`
}
