package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/repository"
)

// CreateWorker registers a new worker, validating the optional project
// reference
func (s *DefaultService) CreateWorker(ctx context.Context, req models.CreateWorkerRequest) (*models.Worker, error) {
	projectID, err := s.resolveProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	joinedDate := models.Today()
	if req.JoinedDate != "" {
		joinedDate, err = models.ParseDate(req.JoinedDate)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	worker := &models.Worker{
		Name:           req.Name,
		Phone:          req.Phone,
		RatePerDay:     req.RatePerDay,
		AadhaarNumber:  req.AadhaarNumber,
		PoliceVerified: req.PoliceVerified,
		Address:        req.Address,
		Role:           req.Role,
		JoinedDate:     joinedDate,
		ProjectID:      projectID,
	}

	if err := s.repo.CreateWorker(ctx, worker); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("phone %s already registered: %w", req.Phone, ErrValidation)
		}
		return nil, fmt.Errorf("error creating worker: %w", err)
	}

	return worker, nil
}

func (s *DefaultService) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	worker, err := s.repo.GetWorker(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", id)
	}

	return worker, nil
}

func (s *DefaultService) GetAllWorkers(ctx context.Context) ([]models.Worker, error) {
	return s.repo.ListWorkers(ctx)
}

func (s *DefaultService) GetWorkersByProject(ctx context.Context, projectID string) ([]models.Worker, error) {
	return s.repo.ListWorkersByProject(ctx, projectID)
}

func (s *DefaultService) DeleteWorker(ctx context.Context, id string) error {
	worker, err := s.repo.GetWorker(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return notFound("worker", id)
	}

	return s.repo.DeleteWorker(ctx, id)
}
