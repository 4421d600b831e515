package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/repository/contract"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/pkg/rss"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = noopLogger{}

type fakeWatchItemRepo struct {
	known   []*entity.WatchItem
	created []*entity.WatchItem
}

func (r *fakeWatchItemRepo) Create(ctx context.Context, item *entity.WatchItem) error {
	r.created = append(r.created, item)
	return nil
}

func (r *fakeWatchItemRepo) CreateBatch(ctx context.Context, items []*entity.WatchItem) error {
	r.created = append(r.created, items...)
	return nil
}

func (r *fakeWatchItemRepo) DeleteAllByFeedId(ctx context.Context, feedId uuid.UUID) error {
	return nil
}

func (r *fakeWatchItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchItem, error) {
	return r.known, nil
}

func (r *fakeWatchItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.known)), nil
}

type fakeWatchFeedRepo struct {
	feeds   []*entity.WatchFeed
	updated []*entity.WatchFeed
}

func (r *fakeWatchFeedRepo) Create(ctx context.Context, feed *entity.WatchFeed) error { return nil }

func (r *fakeWatchFeedRepo) Update(ctx context.Context, feed *entity.WatchFeed) error {
	r.updated = append(r.updated, feed)
	return nil
}

func (r *fakeWatchFeedRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeWatchFeedRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WatchFeed, error) {
	if len(r.feeds) == 0 {
		return nil, nil
	}
	return r.feeds[0], nil
}

func (r *fakeWatchFeedRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WatchFeed, error) {
	return r.feeds, nil
}

func (r *fakeWatchFeedRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.feeds)), nil
}

type fakeUow struct {
	items *fakeWatchItemRepo
	feeds *fakeWatchFeedRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                   { return nil }
func (u *fakeUow) ProjectRepository() contract.ProjectRepository             { return nil }
func (u *fakeUow) SearchLogRepository() contract.SearchLogRepository         { return nil }
func (u *fakeUow) WatchFeedRepository() contract.WatchFeedRepository         { return u.feeds }
func (u *fakeUow) WatchItemRepository() contract.WatchItemRepository         { return u.items }
func (u *fakeUow) ExtractionJobRepository() contract.ExtractionJobRepository { return nil }
func (u *fakeUow) AlertRepository() contract.AlertRepository                 { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

const watchFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>FDA approvals</title>
    <item>
      <guid>guid-1</guid>
      <title>Already seen approval</title>
      <link>https://example.com/one</link>
    </item>
    <item>
      <guid>guid-2</guid>
      <title>Fresh approval</title>
      <link>https://example.com/two</link>
    </item>
    <item>
      <title>No guid, link identity</title>
      <link>https://example.com/three</link>
    </item>
  </channel>
</rss>`

func TestCheckFeedInsertsOnlyUnseenItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchFeedFixture)
	}))
	defer srv.Close()

	feed := &entity.WatchFeed{
		Id:     uuid.New(),
		UserId: uuid.New(),
		URL:    srv.URL,
		Label:  "FDA approvals",
		Active: true,
	}

	uow := &fakeUow{
		items: &fakeWatchItemRepo{
			known: []*entity.WatchItem{{FeedId: feed.Id, GUID: "guid-1"}},
		},
		feeds: &fakeWatchFeedRepo{feeds: []*entity.WatchFeed{feed}},
	}

	svc := &watcherService{
		uowFactory: &fakeFactory{uow: uow},
		fetcher:    rss.NewFetcher(),
		interval:   time.Minute,
		logger:     noopLogger{},
	}

	err := svc.checkFeed(context.Background(), feed)
	assert.NoError(t, err)

	assert.Len(t, uow.items.created, 2)
	assert.Equal(t, "guid-2", uow.items.created[0].GUID)
	assert.Equal(t, "https://example.com/three", uow.items.created[1].GUID)
	for _, item := range uow.items.created {
		assert.Equal(t, feed.Id, item.FeedId)
		assert.False(t, item.SeenAt.IsZero())
	}

	assert.Len(t, uow.feeds.updated, 1)
	assert.NotNil(t, uow.feeds.updated[0].LastCheckedAt)
}

func TestCheckAllFeedsSurvivesBrokenFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchFeedFixture)
	}))
	defer srv.Close()

	good := &entity.WatchFeed{Id: uuid.New(), URL: srv.URL, Label: "good", Active: true}
	broken := &entity.WatchFeed{Id: uuid.New(), URL: "http://127.0.0.1:1/feed", Label: "broken", Active: true}

	uow := &fakeUow{
		items: &fakeWatchItemRepo{},
		feeds: &fakeWatchFeedRepo{feeds: []*entity.WatchFeed{broken, good}},
	}

	svc := &watcherService{
		uowFactory: &fakeFactory{uow: uow},
		fetcher:    rss.NewFetcher(),
		interval:   time.Minute,
		logger:     noopLogger{},
	}

	svc.CheckAllFeeds(context.Background())

	// The broken feed fails but the good one is still swept.
	assert.Len(t, uow.items.created, 3)
	assert.Len(t, uow.feeds.updated, 1)
	assert.Equal(t, good.Id, uow.feeds.updated[0].Id)
}
