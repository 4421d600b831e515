package mapper

import (
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/model"

	"gorm.io/datatypes"
)

type ExtractionJobMapper struct{}

func NewExtractionJobMapper() *ExtractionJobMapper {
	return &ExtractionJobMapper{}
}

func (m *ExtractionJobMapper) ToEntity(j *model.ExtractionJob) *entity.ExtractionJob {
	if j == nil {
		return nil
	}
	return &entity.ExtractionJob{
		Id:          j.Id,
		UserId:      j.UserId,
		Filename:    j.Filename,
		FilePath:    j.FilePath,
		Status:      j.Status,
		Markdown:    j.Markdown,
		Payload:     []byte(j.Payload),
		Error:       j.Error,
		SubmittedAt: j.SubmittedAt,
		CompletedAt: j.CompletedAt,
	}
}

func (m *ExtractionJobMapper) ToModel(j *entity.ExtractionJob) *model.ExtractionJob {
	if j == nil {
		return nil
	}
	return &model.ExtractionJob{
		Id:          j.Id,
		UserId:      j.UserId,
		Filename:    j.Filename,
		FilePath:    j.FilePath,
		Status:      j.Status,
		Markdown:    j.Markdown,
		Payload:     datatypes.JSON(j.Payload),
		Error:       j.Error,
		SubmittedAt: j.SubmittedAt,
		CompletedAt: j.CompletedAt,
	}
}

func (m *ExtractionJobMapper) ToEntities(jobs []*model.ExtractionJob) []*entity.ExtractionJob {
	entities := make([]*entity.ExtractionJob, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
