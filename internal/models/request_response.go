package models

// Request models
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	WorkerID    string `json:"workerId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type CreateWorkerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	RatePerDay     float64 `json:"ratePerDay" binding:"gte=0"`
	AadhaarNumber  string  `json:"aadhaarNumber"`
	PoliceVerified bool    `json:"policeVerified"`
	Address        string  `json:"address"`
	Role           string  `json:"role"`
	JoinedDate     string  `json:"joinedDate"`
	ProjectID      *string `json:"projectId"`
}

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	ManagerName string `json:"managerName"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateTaskRequest struct {
	TaskName    string `json:"taskName" binding:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId" binding:"required"`
	WorkerID    string `json:"workerId" binding:"required"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status" binding:"required"`
}

type CreateMaterialRequest struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	Unit         string  `json:"unit"`
	CostPerUnit  float64 `json:"costPerUnit" binding:"gte=0"`
	SupplierName string  `json:"supplierName"`
	ProjectID    *string `json:"projectId"`
}

type MarkAttendanceRequest struct {
	WorkerID      string  `json:"workerId" binding:"required"`
	ProjectID     *string `json:"projectId"`
	Date          string  `json:"date" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	OvertimeHours float64 `json:"overtimeHours" binding:"gte=0"`
}

// BulkAttendanceEntry is one record of a bulk mark request. Bulk marking
// is same-day-only, so no date field is accepted.
type BulkAttendanceEntry struct {
	WorkerID      string  `json:"workerId" validate:"required"`
	ProjectID     *string `json:"projectId"`
	Status        string  `json:"status" validate:"required"`
	OvertimeHours float64 `json:"overtimeHours" validate:"gte=0"`
}

type UpdateAttendanceRequest struct {
	Status        *string `json:"status"`
	OvertimeHours float64 `json:"overtimeHours" binding:"gte=0"`
}

type AddPaymentRequest struct {
	WorkerID string  `json:"workerId" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

// Response models
type LoginResponse struct {
	Status            string  `json:"status"`
	Token             string  `json:"token,omitempty"`
	ExpiresIn         int     `json:"expiresIn,omitempty"`
	MustResetPassword bool    `json:"mustResetPassword"`
	Worker            *Worker `json:"worker,omitempty"`
}

// FinanceSummary is a read-only projection over the payment ledger
type FinanceSummary struct {
	TotalSalaryPaid   float64         `json:"totalSalaryPaid"`
	TotalAdvanceGiven float64         `json:"totalAdvanceGiven"`
	Balance           float64         `json:"balance"`
	SalaryMonthly     []MonthlyAmount `json:"salaryMonthly"`
	AdvanceMonthly    []MonthlyAmount `json:"advanceMonthly"`
	TopPaidWorkers    []TopWorker     `json:"topPaidWorkers"`
}

// SalaryFailure reports one worker whose salary generation failed during
// a run across all workers
type SalaryFailure struct {
	WorkerID string `json:"workerId"`
	Error    string `json:"error"`
}

// SalaryRunResult carries both the payments generated and the per-worker
// failures of a bulk salary run
type SalaryRunResult struct {
	Generated []Payment       `json:"generated"`
	Failures  []SalaryFailure `json:"failures"`
}

// WeekdayCount is one point of the dashboard's 7-day attendance series
type WeekdayCount struct {
	Day        string `json:"day"`
	Attendance int    `json:"attendance"`
}

// DashboardSummary aggregates site-wide counts with the finance block
type DashboardSummary struct {
	TotalWorkers           int            `json:"totalWorkers"`
	TotalProjects          int            `json:"totalProjects"`
	ActiveProjects         int            `json:"activeProjects"`
	CompletedProjects      int            `json:"completedProjects"`
	PendingProjects        int            `json:"pendingProjects"`
	TotalAttendanceRecords int            `json:"totalAttendanceRecords"`
	TotalOvertimeHours     float64        `json:"totalOvertimeHours"`
	AverageDailyAttendance float64        `json:"averageDailyAttendance"`
	WeeklyAttendance       []WeekdayCount `json:"weeklyAttendance"`
	TotalSalary            float64        `json:"totalSalary"`
	TotalAdvance           float64        `json:"totalAdvance"`
	Balance                float64        `json:"balance"`
}

// ErrorResponse is the JSON error envelope returned by the API
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
