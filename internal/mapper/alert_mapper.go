package mapper

import (
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/model"

	"gorm.io/datatypes"
)

type AlertMapper struct{}

func NewAlertMapper() *AlertMapper {
	return &AlertMapper{}
}

func (m *AlertMapper) ToEntity(a *model.Alert) *entity.Alert {
	if a == nil {
		return nil
	}
	return &entity.Alert{
		Id:        a.Id,
		UserId:    a.UserId,
		TypeCode:  a.TypeCode,
		Title:     a.Title,
		Message:   a.Message,
		Metadata:  []byte(a.Metadata),
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AlertMapper) ToModel(a *entity.Alert) *model.Alert {
	if a == nil {
		return nil
	}
	return &model.Alert{
		Id:        a.Id,
		UserId:    a.UserId,
		TypeCode:  a.TypeCode,
		Title:     a.Title,
		Message:   a.Message,
		Metadata:  datatypes.JSON(a.Metadata),
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AlertMapper) ToEntities(alerts []*model.Alert) []*entity.Alert {
	entities := make([]*entity.Alert, len(alerts))
	for i, a := range alerts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
