package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/sitetrack/site-server/internal/models"
)

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// Worker operations
	CreateWorker(ctx context.Context, worker *models.Worker) error
	GetWorker(ctx context.Context, id string) (*models.Worker, error)
	GetWorkerByPhone(ctx context.Context, phone string) (*models.Worker, error)
	ListWorkers(ctx context.Context) ([]models.Worker, error)
	ListWorkersByProject(ctx context.Context, projectID string) ([]models.Worker, error)
	UpdateWorkerPassword(ctx context.Context, id, passwordHash string, mustReset bool) error
	DeleteWorker(ctx context.Context, id string) error
	CountWorkers(ctx context.Context) (int, error)

	// Project operations
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error
	CountProjects(ctx context.Context) (int, error)
	CountProjectsByStatus(ctx context.Context, status string) (int, error)

	// Task operations
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error)
	ListTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error)
	ListTasksByStatus(ctx context.Context, status string) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
	DeleteTask(ctx context.Context, id string) error

	// Material operations
	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterial(ctx context.Context, id string) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	ListMaterialsByProject(ctx context.Context, projectID string) ([]models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	// Attendance operations
	CreateAttendance(ctx context.Context, att *models.Attendance) error
	CreateAttendanceBatch(ctx context.Context, records []*models.Attendance) ([]models.Attendance, error)
	AttendanceExists(ctx context.Context, workerID string, date models.Date) (bool, error)
	GetAttendance(ctx context.Context, id string) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, att *models.Attendance) error
	ListAttendance(ctx context.Context) ([]models.Attendance, error)
	ListAttendanceByRange(ctx context.Context, from, to models.Date) ([]models.Attendance, error)
	ListAttendanceByWorker(ctx context.Context, workerID string) ([]models.Attendance, error)
	ListAttendanceByWorkerAndRange(ctx context.Context, workerID string, from, to models.Date) ([]models.Attendance, error)
	ListAttendanceByProject(ctx context.Context, projectID string) ([]models.Attendance, error)
	ListAttendanceByProjectAndRange(ctx context.Context, projectID string, from, to models.Date) ([]models.Attendance, error)
	ListAttendanceByProjectAndWorker(ctx context.Context, projectID, workerID string) ([]models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
	DeleteAttendanceByWorker(ctx context.Context, workerID string) error
	CountPresentDays(ctx context.Context, workerID string) (int, error)
	CountAttendance(ctx context.Context) (int, error)
	SumOvertimeHours(ctx context.Context) (float64, error)
	AverageDailyAttendance(ctx context.Context) (float64, error)
	DailyAttendanceCounts(ctx context.Context, from, to models.Date) ([]models.DateCount, error)

	// Payment operations
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	ListPaymentsByWorker(ctx context.Context, workerID string) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	TotalPaymentsByType(ctx context.Context, ptype models.PaymentType) (float64, error)
	MonthlyPaymentTotals(ctx context.Context, ptype models.PaymentType, since models.Date) ([]models.MonthlyAmount, error)
	TopPaidWorkers(ctx context.Context, limit int) ([]models.TopWorker, error)
}

// uniqueViolation is the PostgreSQL error code for a unique constraint violation
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique constraint,
// e.g. two concurrent marks racing on the (worker, date) constraint
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
