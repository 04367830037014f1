package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// CreateTask assigns a unit of work to a worker on a project
func (s *DefaultService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	project, err := s.repo.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return nil, notFound("project", req.ProjectID)
	}

	worker, err := s.repo.GetWorker(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", req.WorkerID)
	}

	task := &models.Task{
		TaskName:    req.TaskName,
		Description: req.Description,
		ProjectID:   project.ID,
		WorkerID:    worker.ID,
		Status:      req.Status,
	}

	if req.Deadline != "" {
		task.Deadline, err = models.ParseDate(req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

func (s *DefaultService) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return s.repo.ListTasks(ctx)
}

func (s *DefaultService) GetTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	return s.repo.ListTasksByProject(ctx, projectID)
}

func (s *DefaultService) GetTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error) {
	return s.repo.ListTasksByWorker(ctx, workerID)
}

func (s *DefaultService) GetTasksByStatus(ctx context.Context, status string) ([]models.Task, error) {
	return s.repo.ListTasksByStatus(ctx, status)
}

func (s *DefaultService) UpdateTaskStatus(ctx context.Context, id, status string) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting task: %w", err)
	}
	if task == nil {
		return nil, notFound("task", id)
	}

	if err := s.repo.UpdateTaskStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	task.Status = status
	return task, nil
}

func (s *DefaultService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting task: %w", err)
	}
	if task == nil {
		return notFound("task", id)
	}

	return s.repo.DeleteTask(ctx, id)
}
