package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/repository"
)

// hoursPerDay is the standard working day; overtime is paid at the
// hourly rate it implies
const hoursPerDay = 8

// computePay derives total pay for one attendance mark. Anything other
// than Present earns nothing, overtime included.
func computePay(status models.AttendanceStatus, ratePerDay, overtimeHours float64) float64 {
	if status != models.StatusPresent {
		return 0
	}
	return ratePerDay + overtimeHours*(ratePerDay/hoursPerDay)
}

// MarkAttendance records a single attendance mark for a worker on a date
func (s *DefaultService) MarkAttendance(ctx context.Context, req models.MarkAttendanceRequest) (*models.Attendance, error) {
	worker, err := s.repo.GetWorker(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", req.WorkerID)
	}

	projectID, err := s.resolveProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("unrecognized attendance status %q: %w", req.Status, ErrValidation)
	}

	if req.OvertimeHours < 0 {
		return nil, fmt.Errorf("overtime hours must not be negative: %w", ErrValidation)
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	// Prevent duplicates
	exists, err := s.repo.AttendanceExists(ctx, worker.ID, date)
	if err != nil {
		return nil, fmt.Errorf("error checking attendance: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("worker %s already marked on %s: %w", worker.ID, date, ErrDuplicateAttendance)
	}

	att := &models.Attendance{
		WorkerID:      worker.ID,
		ProjectID:     projectID,
		Date:          date,
		Status:        status,
		OvertimeHours: req.OvertimeHours,
		TotalPay:      computePay(status, worker.RatePerDay, req.OvertimeHours),
	}

	if err := s.repo.CreateAttendance(ctx, att); err != nil {
		// A concurrent mark can slip past the pre-check; the unique
		// constraint rejects the loser
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("worker %s already marked on %s: %w", worker.ID, date, ErrDuplicateAttendance)
		}
		return nil, fmt.Errorf("error creating attendance: %w", err)
	}

	return att, nil
}

// MarkAttendanceBulk marks attendance for several workers at once. Every
// record is forced to today's date; workers already marked today are
// skipped rather than failing the batch. The batch is applied as a single
// transaction.
func (s *DefaultService) MarkAttendanceBulk(ctx context.Context, entries []models.BulkAttendanceEntry) ([]models.Attendance, error) {
	today := models.Today()
	batch := make([]*models.Attendance, 0, len(entries))

	for _, entry := range entries {
		worker, err := s.repo.GetWorker(ctx, entry.WorkerID)
		if err != nil {
			return nil, fmt.Errorf("error getting worker: %w", err)
		}
		if worker == nil {
			return nil, notFound("worker", entry.WorkerID)
		}

		projectID, err := s.resolveProject(ctx, entry.ProjectID)
		if err != nil {
			return nil, err
		}

		status, ok := models.ParseAttendanceStatus(entry.Status)
		if !ok {
			return nil, fmt.Errorf("unrecognized attendance status %q: %w", entry.Status, ErrValidation)
		}

		if entry.OvertimeHours < 0 {
			return nil, fmt.Errorf("overtime hours must not be negative: %w", ErrValidation)
		}

		exists, err := s.repo.AttendanceExists(ctx, worker.ID, today)
		if err != nil {
			return nil, fmt.Errorf("error checking attendance: %w", err)
		}
		if exists {
			continue // already marked today, skip silently
		}

		batch = append(batch, &models.Attendance{
			WorkerID:      worker.ID,
			ProjectID:     projectID,
			Date:          today,
			Status:        status,
			OvertimeHours: entry.OvertimeHours,
			TotalPay:      computePay(status, worker.RatePerDay, entry.OvertimeHours),
		})
	}

	created, err := s.repo.CreateAttendanceBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("error creating attendance batch: %w", err)
	}

	return created, nil
}

// UpdateAttendance applies a status and/or overtime change and recomputes
// the pay with the same rule used when marking
func (s *DefaultService) UpdateAttendance(ctx context.Context, id string, req models.UpdateAttendanceRequest) (*models.Attendance, error) {
	att, err := s.repo.GetAttendance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting attendance: %w", err)
	}
	if att == nil {
		return nil, notFound("attendance", id)
	}

	if req.Status != nil {
		status, ok := models.ParseAttendanceStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("unrecognized attendance status %q: %w", *req.Status, ErrValidation)
		}
		att.Status = status
	}

	if req.OvertimeHours < 0 {
		return nil, fmt.Errorf("overtime hours must not be negative: %w", ErrValidation)
	}
	att.OvertimeHours = req.OvertimeHours

	worker, err := s.repo.GetWorker(ctx, att.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", att.WorkerID)
	}

	att.TotalPay = computePay(att.Status, worker.RatePerDay, att.OvertimeHours)

	if err := s.repo.UpdateAttendance(ctx, att); err != nil {
		return nil, fmt.Errorf("error updating attendance: %w", err)
	}

	return att, nil
}

func (s *DefaultService) GetAllAttendance(ctx context.Context) ([]models.Attendance, error) {
	return s.repo.ListAttendance(ctx)
}

func (s *DefaultService) GetAttendanceByRange(ctx context.Context, from, to models.Date) ([]models.Attendance, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.ListAttendanceByRange(ctx, from, to)
}

func (s *DefaultService) GetAttendanceByWorker(ctx context.Context, workerID string) ([]models.Attendance, error) {
	return s.repo.ListAttendanceByWorker(ctx, workerID)
}

func (s *DefaultService) GetAttendanceByWorkerAndRange(
	ctx context.Context,
	workerID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.ListAttendanceByWorkerAndRange(ctx, workerID, from, to)
}

func (s *DefaultService) GetAttendanceByProject(ctx context.Context, projectID string) ([]models.Attendance, error) {
	return s.repo.ListAttendanceByProject(ctx, projectID)
}

func (s *DefaultService) GetAttendanceByProjectAndRange(
	ctx context.Context,
	projectID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.ListAttendanceByProjectAndRange(ctx, projectID, from, to)
}

func (s *DefaultService) GetAttendanceByProjectAndWorker(ctx context.Context, projectID, workerID string) ([]models.Attendance, error) {
	return s.repo.ListAttendanceByProjectAndWorker(ctx, projectID, workerID)
}

// DeleteAttendance removes one attendance record
func (s *DefaultService) DeleteAttendance(ctx context.Context, id string) error {
	att, err := s.repo.GetAttendance(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting attendance: %w", err)
	}
	if att == nil {
		return notFound("attendance", id)
	}

	return s.repo.DeleteAttendance(ctx, id)
}

// DeleteAttendanceByWorker removes all attendance records for a worker.
// Deleting for a worker with no records is a no-op, not an error.
func (s *DefaultService) DeleteAttendanceByWorker(ctx context.Context, workerID string) error {
	return s.repo.DeleteAttendanceByWorker(ctx, workerID)
}

// resolveProject validates an optional project reference, normalizing an
// empty id to nil
func (s *DefaultService) resolveProject(ctx context.Context, projectID *string) (*string, error) {
	if projectID == nil || *projectID == "" {
		return nil, nil
	}

	project, err := s.repo.GetProject(ctx, *projectID)
	if err != nil {
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	if project == nil {
		return nil, notFound("project", *projectID)
	}

	return &project.ID, nil
}
