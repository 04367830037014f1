package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sitetrack/site-server/internal/models"
)

// Attendance repository methods
func (r *PostgresRepository) CreateAttendance(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendance (id, worker_id, project_id, date, status, overtime_hours,
			total_pay, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	// Generate a new UUID if not provided
	if att.ID == "" {
		att.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.WorkerID, att.ProjectID, att.Date, att.Status,
		att.OvertimeHours, att.TotalPay, att.CreatedAt, att.UpdatedAt)

	return err
}

// CreateAttendanceBatch inserts a batch of marks in a single transaction.
// Records that collide with an existing (worker_id, date) row are skipped
// via ON CONFLICT DO NOTHING; only the rows actually inserted are returned.
func (r *PostgresRepository) CreateAttendanceBatch(ctx context.Context, records []*models.Attendance) ([]models.Attendance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	query := `
		INSERT INTO attendance (id, worker_id, project_id, date, status, overtime_hours,
			total_pay, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (worker_id, date) DO NOTHING
		RETURNING id
	`

	now := time.Now().UTC()
	created := []models.Attendance{}

	for _, att := range records {
		if att.ID == "" {
			att.ID = uuid.New().String()
		}
		att.CreatedAt = now
		att.UpdatedAt = now

		var insertedID string
		err = tx.QueryRowContext(ctx, query,
			att.ID, att.WorkerID, att.ProjectID, att.Date, att.Status,
			att.OvertimeHours, att.TotalPay, att.CreatedAt, att.UpdatedAt).Scan(&insertedID)
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race against an existing mark; skip this record
			err = nil
			continue
		}
		if err != nil {
			return nil, err
		}

		created = append(created, *att)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}

func (r *PostgresRepository) AttendanceExists(ctx context.Context, workerID string, date models.Date) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM attendance WHERE worker_id = $1 AND date = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, workerID, date)
	return exists, err
}

func (r *PostgresRepository) GetAttendance(ctx context.Context, id string) (*models.Attendance, error) {
	query := `SELECT * FROM attendance WHERE id = $1`

	var att models.Attendance
	err := r.db.GetContext(ctx, &att, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Attendance not found
		}
		return nil, err
	}

	return &att, nil
}

func (r *PostgresRepository) UpdateAttendance(ctx context.Context, att *models.Attendance) error {
	query := `
		UPDATE attendance
		SET status = $1, overtime_hours = $2, total_pay = $3, updated_at = $4
		WHERE id = $5
	`

	att.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		att.Status, att.OvertimeHours, att.TotalPay, att.UpdatedAt, att.ID)

	return err
}

func (r *PostgresRepository) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	query := `SELECT * FROM attendance ORDER BY date DESC`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByRange(ctx context.Context, from, to models.Date) ([]models.Attendance, error) {
	query := `SELECT * FROM attendance WHERE date BETWEEN $1 AND $2 ORDER BY date DESC`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, from, to); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByWorker(ctx context.Context, workerID string) ([]models.Attendance, error) {
	query := `SELECT * FROM attendance WHERE worker_id = $1 ORDER BY date DESC`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, workerID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByWorkerAndRange(
	ctx context.Context,
	workerID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	query := `
		SELECT * FROM attendance
		WHERE worker_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, workerID, from, to); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByProject(ctx context.Context, projectID string) ([]models.Attendance, error) {
	query := `SELECT * FROM attendance WHERE project_id = $1 ORDER BY date DESC`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, projectID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByProjectAndRange(
	ctx context.Context,
	projectID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	query := `
		SELECT * FROM attendance
		WHERE project_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, projectID, from, to); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) ListAttendanceByProjectAndWorker(ctx context.Context, projectID, workerID string) ([]models.Attendance, error) {
	query := `SELECT * FROM attendance WHERE project_id = $1 AND worker_id = $2 ORDER BY date DESC`

	var records []models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, projectID, workerID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PostgresRepository) DeleteAttendance(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) DeleteAttendanceByWorker(ctx context.Context, workerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE worker_id = $1`, workerID)
	return err
}

func (r *PostgresRepository) CountPresentDays(ctx context.Context, workerID string) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE worker_id = $1 AND LOWER(status) = 'present'`

	var count int
	err := r.db.GetContext(ctx, &count, query, workerID)
	return count, err
}

func (r *PostgresRepository) CountAttendance(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM attendance`)
	return count, err
}

func (r *PostgresRepository) SumOvertimeHours(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(overtime_hours), 0) FROM attendance`)
	return total, err
}

func (r *PostgresRepository) AverageDailyAttendance(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(COUNT(id)::float / NULLIF(COUNT(DISTINCT date), 0), 0)
		FROM attendance
	`

	var avg float64
	err := r.db.GetContext(ctx, &avg, query)
	return avg, err
}

func (r *PostgresRepository) DailyAttendanceCounts(ctx context.Context, from, to models.Date) ([]models.DateCount, error) {
	query := `
		SELECT date, COUNT(*) AS count
		FROM attendance
		WHERE date BETWEEN $1 AND $2
		GROUP BY date
		ORDER BY date
	`

	var counts []models.DateCount
	if err := r.db.SelectContext(ctx, &counts, query, from, to); err != nil {
		return nil, err
	}

	return counts, nil
}
