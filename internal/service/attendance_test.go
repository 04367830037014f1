package service_test

import (
	"context"
	"testing"

	"github.com/sitetrack/site-server/internal/api/testutils"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendancePay(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Ravi", "9000000001", 500)

	// Test case 1: Present with overtime pays rate plus hourly overtime
	att, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID:      worker.ID,
		Date:          "2026-08-03",
		Status:        "Present",
		OvertimeHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPresent, att.Status)
	assert.Equal(t, 625.0, att.TotalPay) // 500 + 2 * (500/8)

	// Test case 2: Absent earns nothing, overtime included
	att, err = testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID:      worker.ID,
		Date:          "2026-08-04",
		Status:        "absent",
		OvertimeHours: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, att.Status)
	assert.Equal(t, 0.0, att.TotalPay)

	// Test case 3: Present without overtime pays exactly the day rate
	att, err = testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: worker.ID,
		Date:     "2026-08-05",
		Status:   "PRESENT",
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, att.TotalPay)
}

func TestMarkAttendanceRejectsDuplicate(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Sita", "9000000002", 400)

	req := models.MarkAttendanceRequest{
		WorkerID: worker.ID,
		Date:     "2026-08-10",
		Status:   "Present",
	}

	_, err := testCtx.Service.MarkAttendance(ctx, req)
	require.NoError(t, err)

	// Same worker, same day, different status: still a duplicate
	req.Status = "Absent"
	_, err = testCtx.Service.MarkAttendance(ctx, req)
	assert.ErrorIs(t, err, service.ErrDuplicateAttendance)

	// A different day is fine
	req.Date = "2026-08-11"
	_, err = testCtx.Service.MarkAttendance(ctx, req)
	assert.NoError(t, err)
}

func TestMarkAttendanceValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Arun", "9000000003", 450)

	// Test case 1: Unknown worker
	_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: "no-such-worker",
		Date:     "2026-08-10",
		Status:   "Present",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	// Test case 2: Unrecognized status is rejected, not treated as absent
	_, err = testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: worker.ID,
		Date:     "2026-08-10",
		Status:   "Sick",
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	// Test case 3: Malformed date
	_, err = testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: worker.ID,
		Date:     "10/08/2026",
		Status:   "Present",
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	// Test case 4: Unknown project reference
	badProject := "no-such-project"
	_, err = testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID:  worker.ID,
		ProjectID: &badProject,
		Date:      "2026-08-10",
		Status:    "Present",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMarkAttendanceBulk(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	w1 := testCtx.CreateTestWorker(t, "Worker One", "9000000011", 500)
	w2 := testCtx.CreateTestWorker(t, "Worker Two", "9000000012", 600)
	w3 := testCtx.CreateTestWorker(t, "Worker Three", "9000000013", 700)

	// Worker two is already marked today; the bulk run must skip them
	// without failing the batch
	_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: w2.ID,
		Date:     models.Today().String(),
		Status:   "Present",
	})
	require.NoError(t, err)

	created, err := testCtx.Service.MarkAttendanceBulk(ctx, []models.BulkAttendanceEntry{
		{WorkerID: w1.ID, Status: "Present", OvertimeHours: 1},
		{WorkerID: w2.ID, Status: "Present"},
		{WorkerID: w3.ID, Status: "Leave"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Every created record carries today's date regardless of input
	today := models.Today()
	for _, att := range created {
		assert.True(t, att.Date.Equal(today.Time), "bulk mark must be dated today")
	}
	assert.Equal(t, w1.ID, created[0].WorkerID)
	assert.Equal(t, 562.5, created[0].TotalPay) // 500 + 1 * (500/8)
	assert.Equal(t, w3.ID, created[1].WorkerID)
	assert.Equal(t, 0.0, created[1].TotalPay) // Leave earns nothing

	// An unknown worker anywhere in the batch aborts the whole batch
	_, err = testCtx.Service.MarkAttendanceBulk(ctx, []models.BulkAttendanceEntry{
		{WorkerID: w1.ID, Status: "Present"},
		{WorkerID: "no-such-worker", Status: "Present"},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateAttendanceRecomputesPay(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Meena", "9000000021", 800)

	att, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
		WorkerID: worker.ID,
		Date:     "2026-08-12",
		Status:   "Absent",
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, att.TotalPay)

	// Flip to Present with overtime: pay must be recomputed
	status := "Present"
	updated, err := testCtx.Service.UpdateAttendance(ctx, att.ID, models.UpdateAttendanceRequest{
		Status:        &status,
		OvertimeHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPresent, updated.Status)
	assert.Equal(t, 1200.0, updated.TotalPay) // 800 + 4 * (800/8)

	// Dropping overtime alone also recomputes
	updated, err = testCtx.Service.UpdateAttendance(ctx, att.ID, models.UpdateAttendanceRequest{})
	require.NoError(t, err)
	assert.Equal(t, 800.0, updated.TotalPay)

	// Unknown record
	_, err = testCtx.Service.UpdateAttendance(ctx, "no-such-id", models.UpdateAttendanceRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAttendanceRangeQueries(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Kiran", "9000000031", 500)

	for _, day := range []string{"2026-08-01", "2026-08-02", "2026-08-15"} {
		_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
			WorkerID: worker.ID,
			Date:     day,
			Status:   "Present",
		})
		require.NoError(t, err)
	}

	from, _ := models.ParseDate("2026-08-01")
	to, _ := models.ParseDate("2026-08-02")

	// Both ends inclusive
	records, err := testCtx.Service.GetAttendanceByWorkerAndRange(ctx, worker.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Inverted range is rejected
	_, err = testCtx.Service.GetAttendanceByWorkerAndRange(ctx, worker.ID, to, from)
	assert.ErrorIs(t, err, service.ErrInvalidRange)

	// A missing end is rejected
	_, err = testCtx.Service.GetAttendanceByRange(ctx, from, models.Date{})
	assert.ErrorIs(t, err, service.ErrInvalidRange)
}

func TestDeleteAttendanceByWorker(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	w1 := testCtx.CreateTestWorker(t, "Keep", "9000000041", 500)
	w2 := testCtx.CreateTestWorker(t, "Purge", "9000000042", 500)

	for _, w := range []*models.Worker{w1, w2} {
		_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
			WorkerID: w.ID,
			Date:     "2026-08-20",
			Status:   "Present",
		})
		require.NoError(t, err)
	}

	require.NoError(t, testCtx.Service.DeleteAttendanceByWorker(ctx, w2.ID))

	// Only the purged worker's records are gone
	remaining, err := testCtx.Service.GetAllAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, w1.ID, remaining[0].WorkerID)

	// Deleting again is a no-op, not an error
	assert.NoError(t, testCtx.Service.DeleteAttendanceByWorker(ctx, w2.ID))
}
