package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string         `gorm:"type:varchar(255);not null"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash *string        `gorm:"type:varchar(255)"`
	GoogleId     *string        `gorm:"type:varchar(255);index"`
	IsVerified   bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
