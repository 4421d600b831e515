package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Extraction job lifecycle.
const (
	ExtractionStatusQueued     = "queued"
	ExtractionStatusProcessing = "processing"
	ExtractionStatusComplete   = "complete"
	ExtractionStatusFailed     = "failed"
)

type SubmitExtractionResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ExtractionJobResponse struct {
	Id          uuid.UUID       `json:"id"`
	Filename    string          `json:"filename"`
	Status      string          `json:"status"`
	Markdown    string          `json:"markdown,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Error       string          `json:"error,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// ExtractionJobMessage travels over the in-process job queue.
type ExtractionJobMessage struct {
	JobId uuid.UUID `json:"job_id"`
}
