package contract

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SearchLogRepository interface {
	Create(ctx context.Context, log *entity.SearchLog) error
	Update(ctx context.Context, log *entity.SearchLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SearchLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SearchLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
