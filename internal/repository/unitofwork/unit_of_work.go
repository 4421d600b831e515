package unitofwork

import (
	"context"

	"abcresearch-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	SearchLogRepository() contract.SearchLogRepository
	WatchFeedRepository() contract.WatchFeedRepository
	WatchItemRepository() contract.WatchItemRepository
	ExtractionJobRepository() contract.ExtractionJobRepository
	AlertRepository() contract.AlertRepository
}
