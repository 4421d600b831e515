package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/pkg/marker"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const ExtractionTopic = "extraction_jobs"

var ErrJobNotFound = errors.New("extraction job not found")

type IExtractionService interface {
	Submit(ctx context.Context, userId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.SubmitExtractionResponse, error)
	GetJob(ctx context.Context, userId uuid.UUID, jobId uuid.UUID) (*dto.ExtractionJobResponse, error)
	ListJobs(ctx context.Context, userId uuid.UUID) ([]dto.ExtractionJobResponse, error)
	Consume(ctx context.Context) error
}

// extractionService runs the async PDF extraction flow: uploads are
// spooled to disk and queued, a worker submits them to the Marker API
// and polls until completion, clients poll the job row for results.
type extractionService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	marker     *marker.Client
	spoolDir   string
	logger     logger.ILogger
}

func NewExtractionService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	markerClient *marker.Client,
	spoolDir string,
	logger logger.ILogger,
) IExtractionService {
	return &extractionService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		marker:     markerClient,
		spoolDir:   spoolDir,
		logger:     logger,
	}
}

func (s *extractionService) Submit(ctx context.Context, userId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.SubmitExtractionResponse, error) {
	jobId := uuid.New()

	filePath, err := s.spoolUpload(jobId, fileHeader)
	if err != nil {
		return nil, err
	}

	job := &entity.ExtractionJob{
		Id:          jobId,
		UserId:      userId,
		Filename:    fileHeader.Filename,
		FilePath:    filePath,
		Status:      dto.ExtractionStatusQueued,
		SubmittedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ExtractionJobRepository().Create(ctx, job); err != nil {
		os.Remove(filePath)
		return nil, err
	}

	payload, _ := json.Marshal(dto.ExtractionJobMessage{JobId: jobId})
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(ExtractionTopic, msg); err != nil {
		return nil, err
	}

	return &dto.SubmitExtractionResponse{
		Id:     jobId,
		Status: dto.ExtractionStatusQueued,
	}, nil
}

func (s *extractionService) GetJob(ctx context.Context, userId uuid.UUID, jobId uuid.UUID) (*dto.ExtractionJobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.ExtractionJobRepository().FindOne(ctx,
		specification.ByID{ID: jobId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	response := toExtractionResponse(job)
	return &response, nil
}

func (s *extractionService) ListJobs(ctx context.Context, userId uuid.UUID) ([]dto.ExtractionJobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.ExtractionJobRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExtractionJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = toExtractionResponse(job)
	}
	return responses, nil
}

func (s *extractionService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, ExtractionTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *extractionService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ExtractionJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("extraction", "failed to unmarshal job message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.ExtractionJobRepository().FindOne(ctx, specification.ByID{ID: payload.JobId})
	if err != nil {
		s.logger.Error("extraction", "failed to load job", map[string]interface{}{
			"job_id": payload.JobId.String(),
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}
	if job == nil {
		msg.Ack() // Job deleted? Ack.
		return
	}

	job.Status = dto.ExtractionStatusProcessing
	if err := uow.ExtractionJobRepository().Update(ctx, job); err != nil {
		msg.Nack()
		return
	}

	if err := s.runJob(ctx, uow, job); err != nil {
		s.logger.Warn("extraction", "job failed", map[string]interface{}{
			"job_id": job.Id.String(),
			"error":  err.Error(),
		})
		job.Status = dto.ExtractionStatusFailed
		job.Error = err.Error()
		now := time.Now()
		job.CompletedAt = &now
		if err := uow.ExtractionJobRepository().Update(ctx, job); err != nil {
			msg.Nack()
			return
		}
	}

	// Terminal either way; the outcome lives on the job row.
	msg.Ack()
}

func (s *extractionService) runJob(ctx context.Context, uow unitofwork.UnitOfWork, job *entity.ExtractionJob) error {
	file, err := os.Open(job.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open spooled file: %w", err)
	}
	defer file.Close()
	defer os.Remove(job.FilePath)

	submission, err := s.marker.Submit(ctx, job.Filename, file)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	result, err := s.marker.Wait(waitCtx, submission.CheckURL, 3*time.Second)
	if err != nil {
		return err
	}

	job.Status = dto.ExtractionStatusComplete
	job.Markdown = result.Markdown
	job.Payload = result.JSON
	now := time.Now()
	job.CompletedAt = &now

	if err := uow.ExtractionJobRepository().Update(ctx, job); err != nil {
		return err
	}

	s.logger.Info("extraction", "job complete", map[string]interface{}{
		"job_id": job.Id.String(),
	})
	return nil
}

func (s *extractionService) spoolUpload(jobId uuid.UUID, fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.spoolDir, 0o755); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filePath := filepath.Join(s.spoolDir, jobId.String()+".pdf")
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", err
	}
	return filePath, nil
}

func toExtractionResponse(job *entity.ExtractionJob) dto.ExtractionJobResponse {
	return dto.ExtractionJobResponse{
		Id:          job.Id,
		Filename:    job.Filename,
		Status:      job.Status,
		Markdown:    job.Markdown,
		Payload:     json.RawMessage(job.Payload),
		Error:       job.Error,
		SubmittedAt: job.SubmittedAt,
		CompletedAt: job.CompletedAt,
	}
}
