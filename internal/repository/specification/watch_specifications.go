package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByFeedID struct {
	FeedID uuid.UUID
}

func (s ByFeedID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feed_id = ?", s.FeedID)
}

type ByGUIDs struct {
	GUIDs []string
}

func (s ByGUIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("guid IN ?", s.GUIDs)
}

type ActiveFeeds struct{}

func (s ActiveFeeds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}
