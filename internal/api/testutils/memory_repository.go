package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sitetrack/site-server/internal/models"
)

// MemoryRepository is an in-memory Repository used by the test suite so
// service and handler tests run without a Postgres instance. It mirrors
// the Postgres semantics the services rely on: nil for missing rows and
// a unique-violation error for a duplicate (worker, date) mark.
type MemoryRepository struct {
	mu sync.Mutex

	workers    []models.Worker
	projects   []models.Project
	tasks      []models.Task
	materials  []models.Material
	attendance []models.Attendance
	payments   []models.Payment
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func uniqueViolation() error {
	return &pq.Error{Code: "23505"}
}

// Worker methods
func (m *MemoryRepository) CreateWorker(ctx context.Context, worker *models.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.workers {
		if w.Phone == worker.Phone {
			return uniqueViolation()
		}
	}

	if worker.ID == "" {
		worker.ID = uuid.New().String()
	}
	if worker.JoinedDate.IsZero() {
		worker.JoinedDate = models.Today()
	}
	now := time.Now().UTC()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	m.workers = append(m.workers, *worker)
	return nil
}

func (m *MemoryRepository) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.workers {
		if w.ID == id {
			copied := w
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) GetWorkerByPhone(ctx context.Context, phone string) (*models.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.workers {
		if w.Phone == phone {
			copied := w
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Worker(nil), m.workers...), nil
}

func (m *MemoryRepository) ListWorkersByProject(ctx context.Context, projectID string) ([]models.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Worker
	for _, w := range m.workers {
		if w.ProjectID != nil && *w.ProjectID == projectID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MemoryRepository) UpdateWorkerPassword(ctx context.Context, id, passwordHash string, mustReset bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.workers {
		if m.workers[i].ID == id {
			m.workers[i].Password = passwordHash
			m.workers[i].MustResetPassword = mustReset
			m.workers[i].UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (m *MemoryRepository) DeleteWorker(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, w := range m.workers {
		if w.ID == id {
			m.workers = append(m.workers[:i], m.workers[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository) CountWorkers(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.workers), nil
}

// Project methods
func (m *MemoryRepository) CreateProject(ctx context.Context, project *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	m.projects = append(m.projects, *project)
	return nil
}

func (m *MemoryRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.Name == name {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Project(nil), m.projects...), nil
}

func (m *MemoryRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == project.ID {
			project.UpdatedAt = time.Now().UTC()
			m.projects[i] = *project
		}
	}
	return nil
}

func (m *MemoryRepository) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.projects {
		if p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository) CountProjects(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.projects), nil
}

func (m *MemoryRepository) CountProjectsByStatus(ctx context.Context, status string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, p := range m.projects {
		if strings.EqualFold(p.Status, status) {
			count++
		}
	}
	return count, nil
}

// Task methods
func (m *MemoryRepository) CreateTask(ctx context.Context, task *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *MemoryRepository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.ID == id {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ListTasks(ctx context.Context) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Task(nil), m.tasks...), nil
}

func (m *MemoryRepository) ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Task
	for _, t := range m.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Task
	for _, t := range m.tasks {
		if t.WorkerID == workerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListTasksByStatus(ctx context.Context, status string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Task
	for _, t := range m.tasks {
		if strings.EqualFold(t.Status, status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryRepository) UpdateTaskStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Status = status
			m.tasks[i].UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (m *MemoryRepository) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Material methods
func (m *MemoryRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if material.ID == "" {
		material.ID = uuid.New().String()
	}
	material.CreatedAt = time.Now().UTC()

	m.materials = append(m.materials, *material)
	return nil
}

func (m *MemoryRepository) GetMaterial(ctx context.Context, id string) (*models.Material, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, mat := range m.materials {
		if mat.ID == id {
			copied := mat
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Material(nil), m.materials...), nil
}

func (m *MemoryRepository) ListMaterialsByProject(ctx context.Context, projectID string) ([]models.Material, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Material
	for _, mat := range m.materials {
		if mat.ProjectID != nil && *mat.ProjectID == projectID {
			out = append(out, mat)
		}
	}
	return out, nil
}

func (m *MemoryRepository) DeleteMaterial(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, mat := range m.materials {
		if mat.ID == id {
			m.materials = append(m.materials[:i], m.materials[i+1:]...)
			break
		}
	}
	return nil
}

// Attendance methods
func (m *MemoryRepository) CreateAttendance(ctx context.Context, att *models.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insertAttendance(att)
}

func (m *MemoryRepository) CreateAttendanceBatch(ctx context.Context, records []*models.Attendance) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := []models.Attendance{}
	for _, att := range records {
		if err := m.insertAttendance(att); err != nil {
			continue // duplicate, skip like ON CONFLICT DO NOTHING
		}
		created = append(created, *att)
	}
	return created, nil
}

// insertAttendance enforces the (worker, date) uniqueness the Postgres
// constraint provides. Callers must hold the lock.
func (m *MemoryRepository) insertAttendance(att *models.Attendance) error {
	for _, existing := range m.attendance {
		if existing.WorkerID == att.WorkerID && existing.Date.Equal(att.Date.Time) {
			return uniqueViolation()
		}
	}

	if att.ID == "" {
		att.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	m.attendance = append(m.attendance, *att)
	return nil
}

func (m *MemoryRepository) AttendanceExists(ctx context.Context, workerID string, date models.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.attendance {
		if a.WorkerID == workerID && a.Date.Equal(date.Time) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepository) GetAttendance(ctx context.Context, id string) (*models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.attendance {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) UpdateAttendance(ctx context.Context, att *models.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.attendance {
		if m.attendance[i].ID == att.ID {
			att.UpdatedAt = time.Now().UTC()
			m.attendance[i] = *att
		}
	}
	return nil
}

func (m *MemoryRepository) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Attendance(nil), m.attendance...), nil
}

func (m *MemoryRepository) ListAttendanceByRange(ctx context.Context, from, to models.Date) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if inRange(a.Date, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListAttendanceByWorker(ctx context.Context, workerID string) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListAttendanceByWorkerAndRange(
	ctx context.Context,
	workerID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if a.WorkerID == workerID && inRange(a.Date, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListAttendanceByProject(ctx context.Context, projectID string) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if a.ProjectID != nil && *a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListAttendanceByProjectAndRange(
	ctx context.Context,
	projectID string,
	from, to models.Date,
) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if a.ProjectID != nil && *a.ProjectID == projectID && inRange(a.Date, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListAttendanceByProjectAndWorker(ctx context.Context, projectID, workerID string) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Attendance
	for _, a := range m.attendance {
		if a.ProjectID != nil && *a.ProjectID == projectID && a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) DeleteAttendance(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.attendance {
		if a.ID == id {
			m.attendance = append(m.attendance[:i], m.attendance[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository) DeleteAttendanceByWorker(ctx context.Context, workerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []models.Attendance
	for _, a := range m.attendance {
		if a.WorkerID != workerID {
			kept = append(kept, a)
		}
	}
	m.attendance = kept
	return nil
}

func (m *MemoryRepository) CountPresentDays(ctx context.Context, workerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, a := range m.attendance {
		if a.WorkerID == workerID && strings.EqualFold(string(a.Status), string(models.StatusPresent)) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryRepository) CountAttendance(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.attendance), nil
}

func (m *MemoryRepository) SumOvertimeHours(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0.0
	for _, a := range m.attendance {
		total += a.OvertimeHours
	}
	return total, nil
}

func (m *MemoryRepository) AverageDailyAttendance(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.attendance) == 0 {
		return 0, nil
	}

	days := make(map[string]struct{})
	for _, a := range m.attendance {
		days[a.Date.String()] = struct{}{}
	}
	return float64(len(m.attendance)) / float64(len(days)), nil
}

func (m *MemoryRepository) DailyAttendanceCounts(ctx context.Context, from, to models.Date) ([]models.DateCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byDate := make(map[string]*models.DateCount)
	for _, a := range m.attendance {
		if !inRange(a.Date, from, to) {
			continue
		}
		key := a.Date.String()
		if c, ok := byDate[key]; ok {
			c.Count++
		} else {
			byDate[key] = &models.DateCount{Date: a.Date, Count: 1}
		}
	}

	var out []models.DateCount
	for _, c := range byDate {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

// Payment methods
func (m *MemoryRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Date.IsZero() {
		payment.Date = models.Today()
	}
	payment.CreatedAt = time.Now().UTC()

	m.payments = append(m.payments, *payment)
	return nil
}

func (m *MemoryRepository) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.payments {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) ListPayments(ctx context.Context) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Payment(nil), m.payments...), nil
}

func (m *MemoryRepository) ListPaymentsByWorker(ctx context.Context, workerID string) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Payment
	for _, p := range m.payments {
		if p.WorkerID == workerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryRepository) DeletePayment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.payments {
		if p.ID == id {
			m.payments = append(m.payments[:i], m.payments[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository) TotalPaymentsByType(ctx context.Context, ptype models.PaymentType) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0.0
	for _, p := range m.payments {
		if strings.EqualFold(string(p.Type), string(ptype)) {
			total += p.Amount
		}
	}
	return total, nil
}

func (m *MemoryRepository) MonthlyPaymentTotals(
	ctx context.Context,
	ptype models.PaymentType,
	since models.Date,
) ([]models.MonthlyAmount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byMonth := make(map[int]float64)
	for _, p := range m.payments {
		if !strings.EqualFold(string(p.Type), string(ptype)) || p.Date.Before(since.Time) {
			continue
		}
		byMonth[int(p.Date.Month())] += p.Amount
	}

	var out []models.MonthlyAmount
	for month, total := range byMonth {
		out = append(out, models.MonthlyAmount{Month: month, Total: total})
	}
	return out, nil
}

func (m *MemoryRepository) TopPaidWorkers(ctx context.Context, limit int) ([]models.TopWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	totals := make(map[string]float64)
	var order []string
	for _, p := range m.payments {
		if !strings.EqualFold(string(p.Type), string(models.PaymentSalary)) {
			continue
		}
		if _, seen := totals[p.WorkerID]; !seen {
			order = append(order, p.WorkerID)
		}
		totals[p.WorkerID] += p.Amount
	}

	names := make(map[string]string, len(m.workers))
	for _, w := range m.workers {
		names[w.ID] = w.Name
	}

	out := []models.TopWorker{}
	for _, id := range order {
		out = append(out, models.TopWorker{WorkerID: id, Name: names[id], TotalSalary: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSalary > out[j].TotalSalary })

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func inRange(d, from, to models.Date) bool {
	return !d.Before(from.Time) && !d.After(to.Time)
}
