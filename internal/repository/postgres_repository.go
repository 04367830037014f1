package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sitetrack/site-server/internal/models"
)

// PostgresRepository implements the Repository interface using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

// Worker repository methods
func (r *PostgresRepository) CreateWorker(ctx context.Context, worker *models.Worker) error {
	query := `
		INSERT INTO workers (id, name, phone, rate_per_day, aadhaar_number, police_verified,
			address, role, password, must_reset_password, joined_date, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	// Generate a new UUID if not provided
	if worker.ID == "" {
		worker.ID = uuid.New().String()
	}

	if worker.JoinedDate.IsZero() {
		worker.JoinedDate = models.Today()
	}

	now := time.Now().UTC()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		worker.ID, worker.Name, worker.Phone, worker.RatePerDay, worker.AadhaarNumber,
		worker.PoliceVerified, worker.Address, worker.Role, worker.Password,
		worker.MustResetPassword, worker.JoinedDate, worker.ProjectID,
		worker.CreatedAt, worker.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	query := `SELECT * FROM workers WHERE id = $1`

	var worker models.Worker
	err := r.db.GetContext(ctx, &worker, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Worker not found
		}
		return nil, err
	}

	return &worker, nil
}

func (r *PostgresRepository) GetWorkerByPhone(ctx context.Context, phone string) (*models.Worker, error) {
	query := `SELECT * FROM workers WHERE phone = $1`

	var worker models.Worker
	err := r.db.GetContext(ctx, &worker, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &worker, nil
}

func (r *PostgresRepository) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	query := `SELECT * FROM workers ORDER BY name`

	var workers []models.Worker
	if err := r.db.SelectContext(ctx, &workers, query); err != nil {
		return nil, err
	}

	return workers, nil
}

func (r *PostgresRepository) ListWorkersByProject(ctx context.Context, projectID string) ([]models.Worker, error) {
	query := `SELECT * FROM workers WHERE project_id = $1 ORDER BY name`

	var workers []models.Worker
	if err := r.db.SelectContext(ctx, &workers, query, projectID); err != nil {
		return nil, err
	}

	return workers, nil
}

func (r *PostgresRepository) UpdateWorkerPassword(ctx context.Context, id, passwordHash string, mustReset bool) error {
	query := `UPDATE workers SET password = $1, must_reset_password = $2, updated_at = $3 WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, passwordHash, mustReset, time.Now().UTC(), id)
	return err
}

func (r *PostgresRepository) DeleteWorker(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) CountWorkers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM workers`)
	return count, err
}

// Project repository methods
func (r *PostgresRepository) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, name, location, start_date, end_date, manager_name,
			status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.Location, project.StartDate, project.EndDate,
		project.ManagerName, project.Status, project.Description,
		project.CreatedAt, project.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT * FROM projects WHERE id = $1`

	var project models.Project
	err := r.db.GetContext(ctx, &project, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Project not found
		}
		return nil, err
	}

	return &project, nil
}

func (r *PostgresRepository) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	query := `SELECT * FROM projects WHERE name = $1`

	var project models.Project
	err := r.db.GetContext(ctx, &project, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `SELECT * FROM projects ORDER BY created_at DESC`

	var projects []models.Project
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $1, location = $2, start_date = $3, end_date = $4,
			manager_name = $5, status = $6, description = $7, updated_at = $8
		WHERE id = $9
	`

	project.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		project.Name, project.Location, project.StartDate, project.EndDate,
		project.ManagerName, project.Status, project.Description,
		project.UpdatedAt, project.ID)

	return err
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) CountProjects(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects`)
	return count, err
}

func (r *PostgresRepository) CountProjectsByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects WHERE LOWER(status) = LOWER($1)`, status)
	return count, err
}

// Task repository methods
func (r *PostgresRepository) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, task_name, description, project_id, worker_id, deadline,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.TaskName, task.Description, task.ProjectID, task.WorkerID,
		task.Deadline, task.Status, task.CreatedAt, task.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT * FROM tasks WHERE id = $1`

	var task models.Task
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (r *PostgresRepository) ListTasks(ctx context.Context) ([]models.Task, error) {
	query := `SELECT * FROM tasks ORDER BY created_at DESC`

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *PostgresRepository) ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	query := `SELECT * FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, projectID); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *PostgresRepository) ListTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error) {
	query := `SELECT * FROM tasks WHERE worker_id = $1 ORDER BY created_at DESC`

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, workerID); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *PostgresRepository) ListTasksByStatus(ctx context.Context, status string) ([]models.Task, error) {
	query := `SELECT * FROM tasks WHERE LOWER(status) = LOWER($1) ORDER BY created_at DESC`

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, status); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *PostgresRepository) UpdateTaskStatus(ctx context.Context, id, status string) error {
	query := `UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	return err
}

func (r *PostgresRepository) DeleteTask(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

// Material repository methods
func (r *PostgresRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (id, name, quantity, unit, cost_per_unit, supplier_name, project_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if material.ID == "" {
		material.ID = uuid.New().String()
	}

	material.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		material.ID, material.Name, material.Quantity, material.Unit,
		material.CostPerUnit, material.SupplierName, material.ProjectID, material.CreatedAt)

	return err
}

func (r *PostgresRepository) GetMaterial(ctx context.Context, id string) (*models.Material, error) {
	query := `SELECT * FROM materials WHERE id = $1`

	var material models.Material
	err := r.db.GetContext(ctx, &material, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &material, nil
}

func (r *PostgresRepository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	query := `SELECT * FROM materials ORDER BY created_at DESC`

	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, query); err != nil {
		return nil, err
	}

	return materials, nil
}

func (r *PostgresRepository) ListMaterialsByProject(ctx context.Context, projectID string) ([]models.Material, error) {
	query := `SELECT * FROM materials WHERE project_id = $1 ORDER BY created_at DESC`

	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, query, projectID); err != nil {
		return nil, err
	}

	return materials, nil
}

func (r *PostgresRepository) DeleteMaterial(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id)
	return err
}
