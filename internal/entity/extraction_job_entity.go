package entity

import (
	"time"

	"github.com/google/uuid"
)

type ExtractionJob struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Filename    string
	FilePath    string // local spool path of the uploaded PDF
	Status      string
	Markdown    string
	Payload     []byte // raw marker JSON response
	Error       string
	SubmittedAt time.Time
	CompletedAt *time.Time
}
