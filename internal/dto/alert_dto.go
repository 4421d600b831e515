package dto

import (
	"time"

	"github.com/google/uuid"
)

type AlertResponse struct {
	Id        uuid.UUID              `json:"id"`
	TypeCode  string                 `json:"type_code"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

type AlertListResponse struct {
	Alerts      []AlertResponse `json:"alerts"`
	UnreadCount int64           `json:"unread_count"`
	Total       int64           `json:"total"`
}
