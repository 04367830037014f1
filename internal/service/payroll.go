package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// salaryNote marks payments written by the payroll generator
const salaryNote = "Auto-generated based on attendance"

// GenerateSalary derives a salary payment from a worker's accumulated
// Present marks: present days times the worker's day rate. All-time marks
// are counted; repeat invocations will pay again (see DESIGN.md).
func (s *DefaultService) GenerateSalary(ctx context.Context, workerID string) (*models.Payment, error) {
	worker, err := s.repo.GetWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", workerID)
	}

	presentDays, err := s.repo.CountPresentDays(ctx, worker.ID)
	if err != nil {
		return nil, fmt.Errorf("error counting present days: %w", err)
	}

	payment := &models.Payment{
		WorkerID: worker.ID,
		Type:     models.PaymentSalary,
		Amount:   float64(presentDays) * worker.RatePerDay,
		Date:     models.Today(),
		Note:     salaryNote,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("error creating salary payment: %w", err)
	}

	return payment, nil
}

// GenerateSalaryForAllWorkers runs the salary generator once per known
// worker. A failure for one worker does not abort the rest; failures are
// collected and returned alongside the generated payments.
func (s *DefaultService) GenerateSalaryForAllWorkers(ctx context.Context) (*models.SalaryRunResult, error) {
	workers, err := s.repo.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing workers: %w", err)
	}

	result := &models.SalaryRunResult{
		Generated: []models.Payment{},
		Failures:  []models.SalaryFailure{},
	}

	for _, worker := range workers {
		payment, err := s.GenerateSalary(ctx, worker.ID)
		if err != nil {
			result.Failures = append(result.Failures, models.SalaryFailure{
				WorkerID: worker.ID,
				Error:    err.Error(),
			})
			continue
		}
		result.Generated = append(result.Generated, *payment)
	}

	return result, nil
}
