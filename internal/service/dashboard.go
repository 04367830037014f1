package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// GetDashboardSummary aggregates site-wide counts, the 7-day attendance
// series, and the finance block into one response
func (s *DefaultService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	totalWorkers, err := s.repo.CountWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting workers: %w", err)
	}

	totalProjects, err := s.repo.CountProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting projects: %w", err)
	}

	activeProjects, err := s.repo.CountProjectsByStatus(ctx, "Active")
	if err != nil {
		return nil, fmt.Errorf("error counting active projects: %w", err)
	}

	completedProjects, err := s.repo.CountProjectsByStatus(ctx, "Completed")
	if err != nil {
		return nil, fmt.Errorf("error counting completed projects: %w", err)
	}

	pendingProjects, err := s.repo.CountProjectsByStatus(ctx, "Pending")
	if err != nil {
		return nil, fmt.Errorf("error counting pending projects: %w", err)
	}

	totalAttendance, err := s.repo.CountAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting attendance: %w", err)
	}

	totalOvertime, err := s.repo.SumOvertimeHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing overtime: %w", err)
	}

	avgAttendance, err := s.repo.AverageDailyAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("error averaging attendance: %w", err)
	}

	weekly, err := s.weeklyAttendance(ctx)
	if err != nil {
		return nil, err
	}

	totalSalary, err := s.repo.TotalPaymentsByType(ctx, models.PaymentSalary)
	if err != nil {
		return nil, fmt.Errorf("error summing salary payments: %w", err)
	}

	totalAdvance, err := s.repo.TotalPaymentsByType(ctx, models.PaymentAdvance)
	if err != nil {
		return nil, fmt.Errorf("error summing advance payments: %w", err)
	}

	return &models.DashboardSummary{
		TotalWorkers:           totalWorkers,
		TotalProjects:          totalProjects,
		ActiveProjects:         activeProjects,
		CompletedProjects:      completedProjects,
		PendingProjects:        pendingProjects,
		TotalAttendanceRecords: totalAttendance,
		TotalOvertimeHours:     totalOvertime,
		AverageDailyAttendance: avgAttendance,
		WeeklyAttendance:       weekly,
		TotalSalary:            totalSalary,
		TotalAdvance:           totalAdvance,
		Balance:                totalSalary - totalAdvance,
	}, nil
}

// weeklyAttendance builds the trailing 7-day head-count series, today
// included, zero-filled for days without marks
func (s *DefaultService) weeklyAttendance(ctx context.Context) ([]models.WeekdayCount, error) {
	end := models.Today()
	start := models.NewDate(end.AddDate(0, 0, -6))

	counts, err := s.repo.DailyAttendanceCounts(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error counting daily attendance: %w", err)
	}

	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[c.Date.String()] = c.Count
	}

	weekly := make([]models.WeekdayCount, 0, 7)
	for i := 0; i < 7; i++ {
		day := models.NewDate(start.AddDate(0, 0, i))
		weekly = append(weekly, models.WeekdayCount{
			Day:        day.Format("Mon"),
			Attendance: byDay[day.String()],
		})
	}

	return weekly, nil
}
