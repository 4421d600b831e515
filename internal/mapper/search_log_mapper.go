package mapper

import (
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/model"
)

type SearchLogMapper struct{}

func NewSearchLogMapper() *SearchLogMapper {
	return &SearchLogMapper{}
}

func (m *SearchLogMapper) ToEntity(s *model.SearchLog) *entity.SearchLog {
	if s == nil {
		return nil
	}
	return &entity.SearchLog{
		Id:             s.Id,
		UserId:         s.UserId,
		ProjectId:      s.ProjectId,
		Query:          s.Query,
		StrategiesUsed: s.StrategiesUsed,
		TrialCount:     s.TrialCount,
		PaperCount:     s.PaperCount,
		DurationMs:     s.DurationMs,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SearchLogMapper) ToModel(s *entity.SearchLog) *model.SearchLog {
	if s == nil {
		return nil
	}
	return &model.SearchLog{
		Id:             s.Id,
		UserId:         s.UserId,
		ProjectId:      s.ProjectId,
		Query:          s.Query,
		StrategiesUsed: s.StrategiesUsed,
		TrialCount:     s.TrialCount,
		PaperCount:     s.PaperCount,
		DurationMs:     s.DurationMs,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SearchLogMapper) ToEntities(logs []*model.SearchLog) []*entity.SearchLog {
	entities := make([]*entity.SearchLog, len(logs))
	for i, s := range logs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
