package unitofwork

import (
	"context"
	"fmt"

	"abcresearch-be/internal/repository/contract"
	"abcresearch-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SearchLogRepository() contract.SearchLogRepository {
	return implementation.NewSearchLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WatchFeedRepository() contract.WatchFeedRepository {
	return implementation.NewWatchFeedRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WatchItemRepository() contract.WatchItemRepository {
	return implementation.NewWatchItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExtractionJobRepository() contract.ExtractionJobRepository {
	return implementation.NewExtractionJobRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AlertRepository() contract.AlertRepository {
	return implementation.NewAlertRepository(u.getDB())
}
