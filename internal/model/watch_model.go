package model

import (
	"time"

	"github.com/google/uuid"
)

type WatchFeed struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	URL           string     `gorm:"type:text;not null"`
	Label         string     `gorm:"type:varchar(255);not null"`
	Active        bool       `gorm:"not null;default:true"`
	LastCheckedAt *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (WatchFeed) TableName() string {
	return "watch_feeds"
}

// WatchItem rows are the watcher's seen-set: one row per (feed, guid).
type WatchItem struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeedId      uuid.UUID  `gorm:"type:uuid;not null;index:idx_watch_items_feed_guid,unique"`
	GUID        string     `gorm:"type:varchar(512);not null;index:idx_watch_items_feed_guid,unique"`
	Title       string     `gorm:"type:text"`
	Link        string     `gorm:"type:text"`
	PublishedAt *time.Time `gorm:""`
	SeenAt      time.Time  `gorm:"autoCreateTime"`
}

func (WatchItem) TableName() string {
	return "watch_items"
}
