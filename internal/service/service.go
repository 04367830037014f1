package service

import (
	"context"
	"time"

	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/repository"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	ResetPassword(ctx context.Context, workerID string) error

	// Workers
	CreateWorker(ctx context.Context, req models.CreateWorkerRequest) (*models.Worker, error)
	GetWorker(ctx context.Context, id string) (*models.Worker, error)
	GetAllWorkers(ctx context.Context) ([]models.Worker, error)
	GetWorkersByProject(ctx context.Context, projectID string) ([]models.Worker, error)
	DeleteWorker(ctx context.Context, id string) error

	// Projects
	CreateProject(ctx context.Context, req models.ProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, req models.ProjectRequest) (*models.Project, error)
	UpdateProjectStatus(ctx context.Context, id, status string) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Tasks
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]models.Task, error)
	GetTasksByProject(ctx context.Context, projectID string) ([]models.Task, error)
	GetTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error)
	GetTasksByStatus(ctx context.Context, status string) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Materials
	CreateMaterial(ctx context.Context, req models.CreateMaterialRequest) (*models.Material, error)
	GetMaterial(ctx context.Context, id string) (*models.Material, error)
	GetAllMaterials(ctx context.Context) ([]models.Material, error)
	GetMaterialsByProject(ctx context.Context, projectID string) ([]models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	// Attendance ledger
	MarkAttendance(ctx context.Context, req models.MarkAttendanceRequest) (*models.Attendance, error)
	MarkAttendanceBulk(ctx context.Context, entries []models.BulkAttendanceEntry) ([]models.Attendance, error)
	UpdateAttendance(ctx context.Context, id string, req models.UpdateAttendanceRequest) (*models.Attendance, error)
	GetAllAttendance(ctx context.Context) ([]models.Attendance, error)
	GetAttendanceByRange(ctx context.Context, from, to models.Date) ([]models.Attendance, error)
	GetAttendanceByWorker(ctx context.Context, workerID string) ([]models.Attendance, error)
	GetAttendanceByWorkerAndRange(ctx context.Context, workerID string, from, to models.Date) ([]models.Attendance, error)
	GetAttendanceByProject(ctx context.Context, projectID string) ([]models.Attendance, error)
	GetAttendanceByProjectAndRange(ctx context.Context, projectID string, from, to models.Date) ([]models.Attendance, error)
	GetAttendanceByProjectAndWorker(ctx context.Context, projectID, workerID string) ([]models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
	DeleteAttendanceByWorker(ctx context.Context, workerID string) error

	// Payment ledger
	AddPayment(ctx context.Context, req models.AddPaymentRequest) (*models.Payment, error)
	GetAllPayments(ctx context.Context) ([]models.Payment, error)
	GetPaymentsByWorker(ctx context.Context, workerID string) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id string) error

	// Payroll
	GenerateSalary(ctx context.Context, workerID string) (*models.Payment, error)
	GenerateSalaryForAllWorkers(ctx context.Context) (*models.SalaryRunResult, error)

	// Reporting
	GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error)
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo          repository.Repository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, jwtSecret string) Service {
	return &DefaultService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour, // 24 hours token validity
	}
}
