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

type AlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AlertMapper
}

func NewAlertRepository(db *gorm.DB) contract.AlertRepository {
	return &AlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewAlertMapper(),
	}
}

func (r *AlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AlertRepositoryImpl) Create(ctx context.Context, alert *entity.Alert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *AlertRepositoryImpl) Update(ctx context.Context, alert *entity.Alert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *AlertRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Alert{}, id).Error
}

func (r *AlertRepositoryImpl) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Update("is_read", true).Error
}

func (r *AlertRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Alert, error) {
	var m model.Alert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Alert, error) {
	var models []*model.Alert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Alert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
