package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CreateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateProjectRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

type ProjectResponse struct {
	Id          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	Searches    []SearchLogResponse `json:"searches"`
}

type SearchLogResponse struct {
	Id             uuid.UUID `json:"id"`
	Query          string    `json:"query"`
	StrategiesUsed int       `json:"strategies_used"`
	TrialCount     int       `json:"trial_count"`
	PaperCount     int       `json:"paper_count"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

type SaveSearchRequest struct {
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
	SearchId  uuid.UUID `json:"search_id" validate:"required"`
}
