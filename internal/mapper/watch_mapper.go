package mapper

import (
	"time"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/model"
)

type WatchMapper struct{}

func NewWatchMapper() *WatchMapper {
	return &WatchMapper{}
}

func (m *WatchMapper) FeedToEntity(f *model.WatchFeed) *entity.WatchFeed {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.WatchFeed{
		Id:            f.Id,
		UserId:        f.UserId,
		URL:           f.URL,
		Label:         f.Label,
		Active:        f.Active,
		LastCheckedAt: f.LastCheckedAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *WatchMapper) FeedToModel(f *entity.WatchFeed) *model.WatchFeed {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.WatchFeed{
		Id:            f.Id,
		UserId:        f.UserId,
		URL:           f.URL,
		Label:         f.Label,
		Active:        f.Active,
		LastCheckedAt: f.LastCheckedAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *WatchMapper) FeedsToEntities(feeds []*model.WatchFeed) []*entity.WatchFeed {
	entities := make([]*entity.WatchFeed, len(feeds))
	for i, f := range feeds {
		entities[i] = m.FeedToEntity(f)
	}
	return entities
}

func (m *WatchMapper) ItemToEntity(it *model.WatchItem) *entity.WatchItem {
	if it == nil {
		return nil
	}
	return &entity.WatchItem{
		Id:          it.Id,
		FeedId:      it.FeedId,
		GUID:        it.GUID,
		Title:       it.Title,
		Link:        it.Link,
		PublishedAt: it.PublishedAt,
		SeenAt:      it.SeenAt,
	}
}

func (m *WatchMapper) ItemToModel(it *entity.WatchItem) *model.WatchItem {
	if it == nil {
		return nil
	}
	return &model.WatchItem{
		Id:          it.Id,
		FeedId:      it.FeedId,
		GUID:        it.GUID,
		Title:       it.Title,
		Link:        it.Link,
		PublishedAt: it.PublishedAt,
		SeenAt:      it.SeenAt,
	}
}

func (m *WatchMapper) ItemsToEntities(items []*model.WatchItem) []*entity.WatchItem {
	entities := make([]*entity.WatchItem, len(items))
	for i, it := range items {
		entities[i] = m.ItemToEntity(it)
	}
	return entities
}
