package implementation

import (
	"context"
	"errors"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/mapper"
	"abcresearch-be/internal/model"
	"abcresearch-be/internal/repository/contract"
	"abcresearch-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchFeedRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WatchMapper
}

func NewWatchFeedRepository(db *gorm.DB) contract.WatchFeedRepository {
	return &WatchFeedRepositoryImpl{
		db:     db,
		mapper: mapper.NewWatchMapper(),
	}
}

func (r *WatchFeedRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WatchFeedRepositoryImpl) Create(ctx context.Context, feed *entity.WatchFeed) error {
	m := r.mapper.FeedToModel(feed)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feed = *r.mapper.FeedToEntity(m)
	return nil
}

func (r *WatchFeedRepositoryImpl) Update(ctx context.Context, feed *entity.WatchFeed) error {
	m := r.mapper.FeedToModel(feed)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feed = *r.mapper.FeedToEntity(m)
	return nil
}

func (r *WatchFeedRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WatchFeed{}, id).Error
}

func (r *WatchFeedRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WatchFeed, error) {
	var m model.WatchFeed
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FeedToEntity(&m), nil
}

func (r *WatchFeedRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchFeed, error) {
	var models []*model.WatchFeed
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FeedsToEntities(models), nil
}

func (r *WatchFeedRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WatchFeed{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
