package contract

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	Update(ctx context.Context, alert *entity.Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Alert, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Alert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
