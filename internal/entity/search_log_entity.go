package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchLog records one executed discovery search. ProjectId is set when the
// user pins the search to a project.
type SearchLog struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProjectId      *uuid.UUID
	Query          string
	StrategiesUsed int
	TrialCount     int
	PaperCount     int
	DurationMs     int64
	CreatedAt      time.Time
}
