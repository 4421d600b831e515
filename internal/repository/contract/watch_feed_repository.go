package contract

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WatchFeedRepository interface {
	Create(ctx context.Context, feed *entity.WatchFeed) error
	Update(ctx context.Context, feed *entity.WatchFeed) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WatchFeed, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchFeed, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
