package model

import (
	"time"

	"github.com/google/uuid"
)

type SearchLog struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectId      *uuid.UUID `gorm:"type:uuid;index"`
	Query          string     `gorm:"type:text;not null"`
	StrategiesUsed int        `gorm:"not null"`
	TrialCount     int        `gorm:"not null"`
	PaperCount     int        `gorm:"not null"`
	DurationMs     int64      `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
}

func (SearchLog) TableName() string {
	return "search_logs"
}
