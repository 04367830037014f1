package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// CreateProject registers a new project; names must be unique
func (s *DefaultService) CreateProject(ctx context.Context, req models.ProjectRequest) (*models.Project, error) {
	existing, err := s.repo.GetProjectByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking project name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("project with name %q already exists: %w", req.Name, ErrValidation)
	}

	project, err := projectFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return project, nil
}

func (s *DefaultService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return nil, notFound("project", id)
	}

	return project, nil
}

func (s *DefaultService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// UpdateProject replaces a project's mutable fields
func (s *DefaultService) UpdateProject(ctx context.Context, id string, req models.ProjectRequest) (*models.Project, error) {
	existing, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if existing == nil {
		return nil, notFound("project", id)
	}

	updated, err := projectFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateProject(ctx, updated); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	return updated, nil
}

func (s *DefaultService) UpdateProjectStatus(ctx context.Context, id, status string) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return nil, notFound("project", id)
	}

	project.Status = status
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	return project, nil
}

func (s *DefaultService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return notFound("project", id)
	}

	return s.repo.DeleteProject(ctx, id)
}

func projectFromRequest(req models.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Location:    req.Location,
		ManagerName: req.ManagerName,
		Status:      req.Status,
		Description: req.Description,
	}

	var err error
	if req.StartDate != "" {
		project.StartDate, err = models.ParseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}
	if req.EndDate != "" {
		project.EndDate, err = models.ParseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	return project, nil
}
