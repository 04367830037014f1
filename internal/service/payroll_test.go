package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sitetrack/site-server/internal/api/testutils"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markDays marks one attendance record per day of August 2026, starting
// on the 1st
func markDays(t *testing.T, testCtx *testutils.TestContext, workerID, status string, days int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= days; i++ {
		_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
			WorkerID: workerID,
			Date:     fmt.Sprintf("2026-08-%02d", i),
			Status:   status,
		})
		require.NoError(t, err)
	}
}

func TestGenerateSalary(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Lakshmi", "9000000101", 500)
	markDays(t, testCtx, worker.ID, "Present", 20)

	payment, err := testCtx.Service.GenerateSalary(ctx, worker.ID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentSalary, payment.Type)
	assert.Equal(t, 10000.0, payment.Amount) // 20 present days * 500
	assert.Equal(t, "Auto-generated based on attendance", payment.Note)
	assert.True(t, payment.Date.Equal(models.Today().Time))

	// The payment lands in the ledger
	payments, err := testCtx.Service.GetPaymentsByWorker(ctx, worker.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, payment.ID, payments[0].ID)
}

func TestGenerateSalaryCountsOnlyPresent(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Gopal", "9000000102", 400)
	markDays(t, testCtx, worker.ID, "Present", 5)

	// Absent, Half Day and Leave marks do not count toward salary
	for i, status := range []string{"Absent", "Half Day", "Leave"} {
		_, err := testCtx.Service.MarkAttendance(ctx, models.MarkAttendanceRequest{
			WorkerID: worker.ID,
			Date:     fmt.Sprintf("2026-09-%02d", i+1),
			Status:   status,
		})
		require.NoError(t, err)
	}

	payment, err := testCtx.Service.GenerateSalary(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, payment.Amount) // 5 present days * 400
}

func TestGenerateSalaryNoAttendance(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Newcomer", "9000000103", 450)

	// A worker with no Present marks still gets a payment, of zero
	payment, err := testCtx.Service.GenerateSalary(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, payment.Amount)

	// Unknown worker
	_, err = testCtx.Service.GenerateSalary(ctx, "no-such-worker")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGenerateSalaryForAllWorkers(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	w1 := testCtx.CreateTestWorker(t, "First", "9000000111", 500)
	w2 := testCtx.CreateTestWorker(t, "Second", "9000000112", 600)
	markDays(t, testCtx, w1.ID, "Present", 10)
	markDays(t, testCtx, w2.ID, "Present", 4)

	result, err := testCtx.Service.GenerateSalaryForAllWorkers(ctx)
	require.NoError(t, err)

	require.Len(t, result.Generated, 2)
	assert.Empty(t, result.Failures)

	amounts := map[string]float64{}
	for _, p := range result.Generated {
		amounts[p.WorkerID] = p.Amount
	}
	assert.Equal(t, 5000.0, amounts[w1.ID])
	assert.Equal(t, 2400.0, amounts[w2.ID])

	// With no workers at all, both slices come back empty rather than nil
	empty := testutils.SetupTestContext(t)
	result, err = empty.Service.GenerateSalaryForAllWorkers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, result.Generated)
	assert.NotNil(t, result.Failures)
	assert.Empty(t, result.Generated)
	assert.Empty(t, result.Failures)
}
