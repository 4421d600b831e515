package service

import (
	"context"
	"time"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/pkg/events"
	pkgNats "abcresearch-be/pkg/nats"
	"abcresearch-be/pkg/rss"

	"github.com/google/uuid"
)

type IWatcherService interface {
	Start(ctx context.Context)
	CheckAllFeeds(ctx context.Context)
}

// watcherService polls every active watch feed on a fixed interval,
// diffs fetched entries against stored GUIDs, persists the new ones and
// publishes a WATCH_ITEM_NEW event per item for downstream alerting.
type watcherService struct {
	uowFactory unitofwork.RepositoryFactory
	fetcher    *rss.Fetcher
	publisher  *pkgNats.Publisher
	interval   time.Duration
	logger     logger.ILogger
}

func NewWatcherService(
	uowFactory unitofwork.RepositoryFactory,
	fetcher *rss.Fetcher,
	publisher *pkgNats.Publisher,
	interval time.Duration,
	logger logger.ILogger,
) IWatcherService {
	return &watcherService{
		uowFactory: uowFactory,
		fetcher:    fetcher,
		publisher:  publisher,
		interval:   interval,
		logger:     logger,
	}
}

func (s *watcherService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// First sweep immediately rather than one full interval in.
		s.CheckAllFeeds(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CheckAllFeeds(ctx)
			}
		}
	}()
}

func (s *watcherService) CheckAllFeeds(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feeds, err := uow.WatchFeedRepository().FindAll(ctx, specification.ActiveFeeds{})
	if err != nil {
		s.logger.Error("watcher", "failed to load active feeds", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, feed := range feeds {
		// One broken feed must not stall the sweep.
		if err := s.checkFeed(ctx, feed); err != nil {
			s.logger.Warn("watcher", "feed check failed", map[string]interface{}{
				"feed_id": feed.Id.String(),
				"url":     feed.URL,
				"error":   err.Error(),
			})
		}
	}
}

func (s *watcherService) checkFeed(ctx context.Context, feed *entity.WatchFeed) error {
	items, err := s.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	newItems, err := s.diffItems(ctx, uow, feed, items)
	if err != nil {
		return err
	}

	if len(newItems) > 0 {
		if err := uow.WatchItemRepository().CreateBatch(ctx, newItems); err != nil {
			return err
		}
		s.logger.Info("watcher", "new feed items discovered", map[string]interface{}{
			"feed_id": feed.Id.String(),
			"count":   len(newItems),
		})
		s.publishNewItems(ctx, feed, newItems)
	}

	now := time.Now()
	feed.LastCheckedAt = &now
	feed.UpdatedAt = &now
	return uow.WatchFeedRepository().Update(ctx, feed)
}

func (s *watcherService) diffItems(ctx context.Context, uow unitofwork.UnitOfWork, feed *entity.WatchFeed, items []rss.Item) ([]*entity.WatchItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	guids := make([]string, len(items))
	for i, item := range items {
		guids[i] = item.GUID
	}

	known, err := uow.WatchItemRepository().FindAll(ctx,
		specification.ByFeedID{FeedID: feed.Id},
		specification.ByGUIDs{GUIDs: guids},
	)
	if err != nil {
		return nil, err
	}

	knownGUIDs := make(map[string]struct{}, len(known))
	for _, item := range known {
		knownGUIDs[item.GUID] = struct{}{}
	}

	now := time.Now()
	var newItems []*entity.WatchItem
	for _, item := range items {
		if _, ok := knownGUIDs[item.GUID]; ok {
			continue
		}
		newItems = append(newItems, &entity.WatchItem{
			Id:          uuid.New(),
			FeedId:      feed.Id,
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
			SeenAt:      now,
		})
	}
	return newItems, nil
}

func (s *watcherService) publishNewItems(ctx context.Context, feed *entity.WatchFeed, items []*entity.WatchItem) {
	if s.publisher == nil {
		return
	}

	for _, item := range items {
		event := events.NewWatchItemEvent(map[string]interface{}{
			"user_id":    feed.UserId.String(),
			"feed_id":    feed.Id.String(),
			"feed_label": feed.Label,
			"item_id":    item.Id.String(),
			"title":      item.Title,
			"link":       item.Link,
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("watcher", "failed to publish watch item event", map[string]interface{}{
				"item_id": item.Id.String(),
				"error":   err.Error(),
			})
		}
	}
}
