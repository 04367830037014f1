package models

import (
	"time"
)

// Worker represents a construction-site worker
type Worker struct {
	ID                string    `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Phone             string    `db:"phone" json:"phone"`
	RatePerDay        float64   `db:"rate_per_day" json:"ratePerDay"`
	AadhaarNumber     string    `db:"aadhaar_number" json:"aadhaarNumber"`
	PoliceVerified    bool      `db:"police_verified" json:"policeVerified"`
	Address           string    `db:"address" json:"address"`
	Role              string    `db:"role" json:"role"`
	Password          string    `db:"password" json:"-"` // Password hash, not returned in JSON
	MustResetPassword bool      `db:"must_reset_password" json:"mustResetPassword"`
	JoinedDate        Date      `db:"joined_date" json:"joinedDate"`
	ProjectID         *string   `db:"project_id" json:"projectId,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// Project represents a construction project
type Project struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	StartDate   Date      `db:"start_date" json:"startDate"`
	EndDate     Date      `db:"end_date" json:"endDate"`
	ManagerName string    `db:"manager_name" json:"managerName"`
	Status      string    `db:"status" json:"status"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Task represents a unit of work assigned to a worker on a project
type Task struct {
	ID          string    `db:"id" json:"id"`
	TaskName    string    `db:"task_name" json:"taskName"`
	Description string    `db:"description" json:"description"`
	ProjectID   string    `db:"project_id" json:"projectId"`
	WorkerID    string    `db:"worker_id" json:"workerId"`
	Deadline    Date      `db:"deadline" json:"deadline"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Material represents building material purchased for a project
type Material struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Quantity     float64   `db:"quantity" json:"quantity"`
	Unit         string    `db:"unit" json:"unit"`
	CostPerUnit  float64   `db:"cost_per_unit" json:"costPerUnit"`
	SupplierName string    `db:"supplier_name" json:"supplierName"`
	ProjectID    *string   `db:"project_id" json:"projectId,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Attendance represents one attendance mark for a worker on a date.
// TotalPay is derived from the worker's day rate and recomputed whenever
// status or overtime hours change.
type Attendance struct {
	ID            string           `db:"id" json:"id"`
	WorkerID      string           `db:"worker_id" json:"workerId"`
	ProjectID     *string          `db:"project_id" json:"projectId,omitempty"`
	Date          Date             `db:"date" json:"date"`
	Status        AttendanceStatus `db:"status" json:"status"`
	OvertimeHours float64          `db:"overtime_hours" json:"overtimeHours"`
	TotalPay      float64          `db:"total_pay" json:"totalPay"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updatedAt"`
}

// Payment represents a discrete payment event against a worker. Payments
// are never mutated after creation.
type Payment struct {
	ID        string      `db:"id" json:"id"`
	WorkerID  string      `db:"worker_id" json:"workerId"`
	Type      PaymentType `db:"type" json:"type"`
	Amount    float64     `db:"amount" json:"amount"`
	Date      Date        `db:"date" json:"date"`
	Note      string      `db:"note" json:"note"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// MonthlyAmount is one point of the trailing-6-month finance series,
// keyed by month-of-year (1-12)
type MonthlyAmount struct {
	Month int     `db:"month" json:"month"`
	Total float64 `db:"total" json:"total"`
}

// TopWorker is one row of the top-paid-workers ranking
type TopWorker struct {
	WorkerID    string  `db:"worker_id" json:"workerId"`
	Name        string  `db:"name" json:"name"`
	TotalSalary float64 `db:"total_salary" json:"totalSalary"`
}

// DateCount is an attendance head count for a single day
type DateCount struct {
	Date  Date `db:"date" json:"date"`
	Count int  `db:"count" json:"count"`
}
