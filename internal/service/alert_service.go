package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/pkg/mailer"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/internal/websocket"
	"abcresearch-be/pkg/events"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("alert not found")

type IAlertService interface {
	List(ctx context.Context, userId uuid.UUID) (*dto.AlertListResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, alertId uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
	HandleWatchItemEvent(ctx context.Context, event events.Event) error
}

// alertService persists alerts and pushes them to connected clients.
// It sits on the consuming end of the event bus: watcher publishes
// WATCH_ITEM_NEW, this service turns it into a stored alert, a
// websocket push and an email digest.
type alertService struct {
	uowFactory   unitofwork.RepositoryFactory
	hub          *websocket.Hub
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAlertService(
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) IAlertService {
	return &alertService{
		uowFactory:   uowFactory,
		hub:          hub,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *alertService) List(ctx context.Context, userId uuid.UUID) (*dto.AlertListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	alerts, err := uow.AlertRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100},
	)
	if err != nil {
		return nil, err
	}

	total, err := uow.AlertRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	unread, err := uow.AlertRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.UnreadOnly{},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = toAlertResponse(alert)
	}

	return &dto.AlertListResponse{
		Alerts:      responses,
		UnreadCount: unread,
		Total:       total,
	}, nil
}

func (s *alertService) MarkRead(ctx context.Context, userId uuid.UUID, alertId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	alert, err := uow.AlertRepository().FindOne(ctx,
		specification.ByID{ID: alertId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if alert == nil {
		return ErrAlertNotFound
	}

	if alert.IsRead {
		return nil
	}

	alert.IsRead = true
	return uow.AlertRepository().Update(ctx, alert)
}

func (s *alertService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AlertRepository().MarkAllRead(ctx, userId)
}

// HandleWatchItemEvent runs on the durable events.WATCH_ITEM_NEW
// consumer. Returning an error makes the subscriber Nak the message, so
// only persistence failures propagate; push and email are best-effort.
func (s *alertService) HandleWatchItemEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	userId, err := uuid.Parse(stringField(payload, "user_id"))
	if err != nil {
		s.logger.Error("alert", "event carries invalid user_id", map[string]interface{}{
			"error": err.Error(),
		})
		return nil // Unparseable event, retrying will not help.
	}

	feedLabel := stringField(payload, "feed_label")
	title := stringField(payload, "title")

	metadata, _ := json.Marshal(map[string]interface{}{
		"feed_id": stringField(payload, "feed_id"),
		"item_id": stringField(payload, "item_id"),
		"link":    stringField(payload, "link"),
	})

	alert := &entity.Alert{
		Id:        uuid.New(),
		UserId:    userId,
		TypeCode:  events.TypeWatchItemNew,
		Title:     fmt.Sprintf("New item in %s", feedLabel),
		Message:   title,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AlertRepository().Create(ctx, alert); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Send(userId, toAlertResponse(alert))
	}

	s.sendDigest(ctx, uow, userId, feedLabel, title)
	return nil
}

func (s *alertService) sendDigest(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, feedLabel, title string) {
	if s.emailService == nil {
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return
	}

	if err := s.emailService.SendWatchDigest(user.Email, feedLabel, []string{title}); err != nil {
		s.logger.Warn("alert", "failed to send watch digest email", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func stringField(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func toAlertResponse(alert *entity.Alert) dto.AlertResponse {
	var metadata map[string]interface{}
	if len(alert.Metadata) > 0 {
		_ = json.Unmarshal(alert.Metadata, &metadata)
	}

	return dto.AlertResponse{
		Id:        alert.Id,
		TypeCode:  alert.TypeCode,
		Title:     alert.Title,
		Message:   alert.Message,
		Metadata:  metadata,
		IsRead:    alert.IsRead,
		CreatedAt: alert.CreatedAt,
	}
}
