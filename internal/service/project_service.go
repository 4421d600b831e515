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

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSearchNotFound  = errors.New("search not found")
)

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error
	GetById(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
	}
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}
	return &dto.CreateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description
	now := time.Now()
	project.UpdatedAt = &now

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}
	return &dto.UpdateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, projectId); err != nil {
		return err
	}
	return uow.ProjectRepository().Delete(ctx, projectId)
}

func (s *projectService) GetById(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	logs, err := uow.SearchLogRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: project.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := toProjectResponse(project)
	response.Searches = make([]dto.SearchLogResponse, len(logs))
	for i, log := range logs {
		response.Searches[i] = toSearchLogResponse(log)
	}
	return &response, nil
}

func (s *projectService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = toProjectResponse(project)
		responses[i].Searches = []dto.SearchLogResponse{}
	}
	return responses, nil
}

func (s *projectService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func toProjectResponse(project *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
