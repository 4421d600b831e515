package contract

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WatchItemRepository interface {
	Create(ctx context.Context, item *entity.WatchItem) error
	CreateBatch(ctx context.Context, items []*entity.WatchItem) error
	DeleteAllByFeedId(ctx context.Context, feedId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
