package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Alert struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	TypeCode  string         `gorm:"type:varchar(64);not null"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Message   string         `gorm:"type:text;not null"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	IsRead    bool           `gorm:"not null;default:false;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (Alert) TableName() string {
	return "alerts"
}
