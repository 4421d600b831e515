package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExtractionJob struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Filename    string         `gorm:"type:varchar(512);not null"`
	FilePath    string         `gorm:"type:text;not null"`
	Status      string         `gorm:"type:varchar(32);not null;index"`
	Markdown    string         `gorm:"type:text"`
	Payload     datatypes.JSON `gorm:"type:jsonb"`
	Error       string         `gorm:"type:text"`
	SubmittedAt time.Time      `gorm:"autoCreateTime"`
	CompletedAt *time.Time     `gorm:""`
}

func (ExtractionJob) TableName() string {
	return "extraction_jobs"
}
