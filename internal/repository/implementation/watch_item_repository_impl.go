package implementation

import (
	"context"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/mapper"
	"abcresearch-be/internal/model"
	"abcresearch-be/internal/repository/contract"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WatchMapper
}

func NewWatchItemRepository(db *gorm.DB) contract.WatchItemRepository {
	return &WatchItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewWatchMapper(),
	}
}

func (r *WatchItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WatchItemRepositoryImpl) Create(ctx context.Context, item *entity.WatchItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *WatchItemRepositoryImpl) CreateBatch(ctx context.Context, items []*entity.WatchItem) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*model.WatchItem, len(items))
	for i, it := range items {
		models[i] = r.mapper.ItemToModel(it)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*items[i] = *r.mapper.ItemToEntity(m)
	}
	return nil
}

func (r *WatchItemRepositoryImpl) DeleteAllByFeedId(ctx context.Context, feedId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("feed_id = ?", feedId).Delete(&model.WatchItem{}).Error
}

func (r *WatchItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchItem, error) {
	var models []*model.WatchItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

func (r *WatchItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WatchItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
