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

type ExtractionJobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExtractionJobMapper
}

func NewExtractionJobRepository(db *gorm.DB) contract.ExtractionJobRepository {
	return &ExtractionJobRepositoryImpl{
		db:     db,
		mapper: mapper.NewExtractionJobMapper(),
	}
}

func (r *ExtractionJobRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExtractionJobRepositoryImpl) Create(ctx context.Context, job *entity.ExtractionJob) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExtractionJobRepositoryImpl) Update(ctx context.Context, job *entity.ExtractionJob) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExtractionJobRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExtractionJob{}, id).Error
}

func (r *ExtractionJobRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExtractionJob, error) {
	var m model.ExtractionJob
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExtractionJobRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExtractionJob, error) {
	var models []*model.ExtractionJob
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
