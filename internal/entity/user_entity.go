package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	FullName     string
	Email        string
	PasswordHash *string // nil for OAuth-only accounts
	GoogleId     *string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
