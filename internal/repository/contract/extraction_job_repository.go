package contract

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExtractionJobRepository interface {
	Create(ctx context.Context, job *entity.ExtractionJob) error
	Update(ctx context.Context, job *entity.ExtractionJob) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExtractionJob, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExtractionJob, error)
}
