package service

import (
	"context"
	"errors"
	"time"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrFeedNotFound = errors.New("watch feed not found")

type IWatchlistService interface {
	CreateFeed(ctx context.Context, userId uuid.UUID, req *dto.CreateWatchFeedRequest) (*dto.CreateWatchFeedResponse, error)
	DeleteFeed(ctx context.Context, userId uuid.UUID, feedId uuid.UUID) error
	GetFeeds(ctx context.Context, userId uuid.UUID) ([]dto.WatchFeedResponse, error)
	GetFeedItems(ctx context.Context, userId uuid.UUID, feedId uuid.UUID) ([]dto.WatchItemResponse, error)
	SetFeedActive(ctx context.Context, userId uuid.UUID, feedId uuid.UUID, active bool) error
}

type watchlistService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWatchlistService(uowFactory unitofwork.RepositoryFactory) IWatchlistService {
	return &watchlistService{
		uowFactory: uowFactory,
	}
}

func (s *watchlistService) CreateFeed(ctx context.Context, userId uuid.UUID, req *dto.CreateWatchFeedRequest) (*dto.CreateWatchFeedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feed := &entity.WatchFeed{
		Id:        uuid.New(),
		UserId:    userId,
		URL:       req.URL,
		Label:     req.Label,
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := uow.WatchFeedRepository().Create(ctx, feed); err != nil {
		return nil, err
	}
	return &dto.CreateWatchFeedResponse{Id: feed.Id}, nil
}

func (s *watchlistService) DeleteFeed(ctx context.Context, userId uuid.UUID, feedId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedFeed(ctx, uow, userId, feedId); err != nil {
		return err
	}

	// Items go with the feed. Both deletes share one transaction.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.WatchItemRepository().DeleteAllByFeedId(ctx, feedId); err != nil {
		return err
	}
	if err := uow.WatchFeedRepository().Delete(ctx, feedId); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *watchlistService) GetFeeds(ctx context.Context, userId uuid.UUID) ([]dto.WatchFeedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feeds, err := uow.WatchFeedRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchFeedResponse, len(feeds))
	for i, feed := range feeds {
		responses[i] = dto.WatchFeedResponse{
			Id:            feed.Id,
			URL:           feed.URL,
			Label:         feed.Label,
			Active:        feed.Active,
			LastCheckedAt: feed.LastCheckedAt,
			CreatedAt:     feed.CreatedAt,
		}
	}
	return responses, nil
}

func (s *watchlistService) GetFeedItems(ctx context.Context, userId uuid.UUID, feedId uuid.UUID) ([]dto.WatchItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedFeed(ctx, uow, userId, feedId); err != nil {
		return nil, err
	}

	items, err := uow.WatchItemRepository().FindAll(ctx,
		specification.ByFeedID{FeedID: feedId},
		specification.OrderBy{Field: "seen_at", Desc: true},
		specification.Pagination{Limit: 100, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.WatchItemResponse{
			Id:          item.Id,
			FeedId:      item.FeedId,
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
			SeenAt:      item.SeenAt,
		}
	}
	return responses, nil
}

func (s *watchlistService) SetFeedActive(ctx context.Context, userId uuid.UUID, feedId uuid.UUID, active bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feed, err := s.findOwnedFeed(ctx, uow, userId, feedId)
	if err != nil {
		return err
	}

	feed.Active = active
	now := time.Now()
	feed.UpdatedAt = &now
	return uow.WatchFeedRepository().Update(ctx, feed)
}

func (s *watchlistService) findOwnedFeed(ctx context.Context, uow unitofwork.UnitOfWork, userId, feedId uuid.UUID) (*entity.WatchFeed, error) {
	feed, err := uow.WatchFeedRepository().FindOne(ctx,
		specification.ByID{ID: feedId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, ErrFeedNotFound
	}
	return feed, nil
}
