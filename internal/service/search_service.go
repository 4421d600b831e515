package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/pkg/discovery"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ISearchService interface {
	Discover(ctx context.Context, userId uuid.UUID, req *dto.DiscoverySearchRequest) (*dto.DiscoveryResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]dto.SearchLogResponse, error)
	SaveToProject(ctx context.Context, userId uuid.UUID, req *dto.SaveSearchRequest) error
}

type searchService struct {
	orchestrator *discovery.Orchestrator
	uowFactory   unitofwork.RepositoryFactory
	redis        *redis.Client
	cacheTTL     time.Duration
	logger       logger.ILogger
}

func NewSearchService(
	orchestrator *discovery.Orchestrator,
	uowFactory unitofwork.RepositoryFactory,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger logger.ILogger,
) ISearchService {
	return &searchService{
		orchestrator: orchestrator,
		uowFactory:   uowFactory,
		redis:        redisClient,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

func (s *searchService) Discover(ctx context.Context, userId uuid.UUID, req *dto.DiscoverySearchRequest) (*dto.DiscoveryResponse, error) {
	query := strings.TrimSpace(req.Query)

	if cached := s.fromCache(ctx, query); cached != nil {
		s.logger.Debug("search", "discovery served from cache", map[string]interface{}{
			"query": query,
		})
		return cached, nil
	}

	started := time.Now()
	result, err := s.orchestrator.Discover(ctx, query)
	if err != nil {
		return nil, err
	}
	duration := time.Since(started)

	s.toCache(ctx, query, result)
	s.recordSearch(ctx, userId, query, result, duration)

	return result, nil
}

func (s *searchService) History(ctx context.Context, userId uuid.UUID) ([]dto.SearchLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.SearchLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SearchLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = toSearchLogResponse(log)
	}
	return responses, nil
}

func (s *searchService) SaveToProject(ctx context.Context, userId uuid.UUID, req *dto.SaveSearchRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: req.ProjectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	log, err := uow.SearchLogRepository().FindOne(ctx,
		specification.ByID{ID: req.SearchId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if log == nil {
		return ErrSearchNotFound
	}

	log.ProjectId = &project.Id
	return uow.SearchLogRepository().Update(ctx, log)
}

// Cache failures are absorbed: a cold or unreachable Redis only costs
// an extra upstream round trip.

func (s *searchService) fromCache(ctx context.Context, query string) *dto.DiscoveryResponse {
	if s.redis == nil {
		return nil
	}

	raw, err := s.redis.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil
	}

	var cached dto.DiscoveryResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *searchService) toCache(ctx context.Context, query string, result *dto.DiscoveryResponse) {
	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKey(query), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("search", "failed to cache discovery response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *searchService) recordSearch(ctx context.Context, userId uuid.UUID, query string, result *dto.DiscoveryResponse, duration time.Duration) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log := &entity.SearchLog{
		Id:             uuid.New(),
		UserId:         userId,
		Query:          query,
		StrategiesUsed: result.StrategiesUsed,
		TrialCount:     len(result.Trials),
		PaperCount:     len(result.Papers),
		DurationMs:     duration.Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if err := uow.SearchLogRepository().Create(ctx, log); err != nil {
		s.logger.Warn("search", "failed to record search log", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query)))
	return "discovery:" + hex.EncodeToString(sum[:])
}

func toSearchLogResponse(log *entity.SearchLog) dto.SearchLogResponse {
	return dto.SearchLogResponse{
		Id:             log.Id,
		Query:          log.Query,
		StrategiesUsed: log.StrategiesUsed,
		TrialCount:     log.TrialCount,
		PaperCount:     log.PaperCount,
		DurationMs:     log.DurationMs,
		CreatedAt:      log.CreatedAt,
	}
}
