package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// AddPayment records a discrete payment event against a worker. The date
// defaults to today when not given.
func (s *DefaultService) AddPayment(ctx context.Context, req models.AddPaymentRequest) (*models.Payment, error) {
	worker, err := s.repo.GetWorker(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, notFound("worker", req.WorkerID)
	}

	ptype, ok := models.ParsePaymentType(req.Type)
	if !ok {
		return nil, fmt.Errorf("unrecognized payment type %q: %w", req.Type, ErrValidation)
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrValidation)
	}

	date := models.Today()
	if req.Date != "" {
		date, err = models.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	payment := &models.Payment{
		WorkerID: worker.ID,
		Type:     ptype,
		Amount:   req.Amount,
		Date:     date,
		Note:     req.Note,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("error creating payment: %w", err)
	}

	return payment, nil
}

func (s *DefaultService) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	return s.repo.ListPayments(ctx)
}

func (s *DefaultService) GetPaymentsByWorker(ctx context.Context, workerID string) ([]models.Payment, error) {
	return s.repo.ListPaymentsByWorker(ctx, workerID)
}

// DeletePayment removes one payment record
func (s *DefaultService) DeletePayment(ctx context.Context, id string) error {
	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting payment: %w", err)
	}
	if payment == nil {
		return notFound("payment", id)
	}

	return s.repo.DeletePayment(ctx, id)
}
