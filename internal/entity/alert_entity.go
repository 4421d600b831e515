package entity

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  []byte // JSON blob
	IsRead    bool
	CreatedAt time.Time
}
