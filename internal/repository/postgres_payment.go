package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sitetrack/site-server/internal/models"
)

// Payment repository methods
func (r *PostgresRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, worker_id, type, amount, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// Generate a new UUID if not provided
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	if payment.Date.IsZero() {
		payment.Date = models.Today()
	}

	payment.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.WorkerID, payment.Type, payment.Amount,
		payment.Date, payment.Note, payment.CreatedAt)

	return err
}

func (r *PostgresRepository) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT * FROM payments WHERE id = $1`

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Payment not found
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PostgresRepository) ListPayments(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT * FROM payments ORDER BY date DESC, created_at DESC`

	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *PostgresRepository) ListPaymentsByWorker(ctx context.Context, workerID string) ([]models.Payment, error) {
	query := `SELECT * FROM payments WHERE worker_id = $1 ORDER BY date DESC, created_at DESC`

	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, workerID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *PostgresRepository) DeletePayment(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

// Finance aggregation methods. These run as indexed SQL aggregates rather
// than scanning the payment table into memory.
func (r *PostgresRepository) TotalPaymentsByType(ctx context.Context, ptype models.PaymentType) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE LOWER(type) = LOWER($1)`

	var total float64
	err := r.db.GetContext(ctx, &total, query, string(ptype))
	return total, err
}

func (r *PostgresRepository) MonthlyPaymentTotals(
	ctx context.Context,
	ptype models.PaymentType,
	since models.Date,
) ([]models.MonthlyAmount, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE LOWER(type) = LOWER($1) AND date >= $2
		GROUP BY EXTRACT(MONTH FROM date)
	`

	var totals []models.MonthlyAmount
	if err := r.db.SelectContext(ctx, &totals, query, string(ptype), since); err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *PostgresRepository) TopPaidWorkers(ctx context.Context, limit int) ([]models.TopWorker, error) {
	query := `
		SELECT p.worker_id, w.name, SUM(p.amount) AS total_salary
		FROM payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE LOWER(p.type) = 'salary'
		GROUP BY p.worker_id, w.name
		ORDER BY SUM(p.amount) DESC
		LIMIT $1
	`

	var workers []models.TopWorker
	if err := r.db.SelectContext(ctx, &workers, query, limit); err != nil {
		return nil, err
	}

	return workers, nil
}
