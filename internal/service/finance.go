package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sitetrack/site-server/internal/models"
)

// topWorkerCount is how many workers the salary leaderboard carries
const topWorkerCount = 5

// trailingMonths is the width of the monthly finance series, current
// month included
const trailingMonths = 6

// GetFinanceSummary builds the read-only finance projection over the
// payment ledger: totals, trailing monthly series, and the salary
// leaderboard. Months are keyed by month-of-year (1-12), so a month from
// a prior year folds into the same key.
func (s *DefaultService) GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	totalSalary, err := s.repo.TotalPaymentsByType(ctx, models.PaymentSalary)
	if err != nil {
		return nil, fmt.Errorf("error summing salary payments: %w", err)
	}

	totalAdvance, err := s.repo.TotalPaymentsByType(ctx, models.PaymentAdvance)
	if err != nil {
		return nil, fmt.Errorf("error summing advance payments: %w", err)
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(trailingMonths - 1), 0)
	since := models.NewDate(windowStart)

	salaryMonthly, err := s.monthlySeries(ctx, models.PaymentSalary, since, windowStart)
	if err != nil {
		return nil, err
	}

	advanceMonthly, err := s.monthlySeries(ctx, models.PaymentAdvance, since, windowStart)
	if err != nil {
		return nil, err
	}

	topWorkers, err := s.repo.TopPaidWorkers(ctx, topWorkerCount)
	if err != nil {
		return nil, fmt.Errorf("error ranking workers: %w", err)
	}
	if topWorkers == nil {
		topWorkers = []models.TopWorker{}
	}

	return &models.FinanceSummary{
		TotalSalaryPaid:   totalSalary,
		TotalAdvanceGiven: totalAdvance,
		Balance:           totalSalary - totalAdvance,
		SalaryMonthly:     salaryMonthly,
		AdvanceMonthly:    advanceMonthly,
		TopPaidWorkers:    topWorkers,
	}, nil
}

// monthlySeries returns one point per trailing month in chronological
// order, zero-filled for months without payments
func (s *DefaultService) monthlySeries(
	ctx context.Context,
	ptype models.PaymentType,
	since models.Date,
	windowStart time.Time,
) ([]models.MonthlyAmount, error) {
	totals, err := s.repo.MonthlyPaymentTotals(ctx, ptype, since)
	if err != nil {
		return nil, fmt.Errorf("error aggregating monthly %s payments: %w", ptype, err)
	}

	byMonth := make(map[int]float64, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t.Total
	}

	series := make([]models.MonthlyAmount, 0, trailingMonths)
	for i := 0; i < trailingMonths; i++ {
		month := int(windowStart.AddDate(0, i, 0).Month())
		series = append(series, models.MonthlyAmount{
			Month: month,
			Total: byMonth[month],
		})
	}

	return series, nil
}
