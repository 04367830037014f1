package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sitetrack/site-server/internal/api/testutils"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPayment(t *testing.T, testCtx *testutils.TestContext, workerID, ptype string, amount float64) {
	t.Helper()
	_, err := testCtx.Service.AddPayment(context.Background(), models.AddPaymentRequest{
		WorkerID: workerID,
		Type:     ptype,
		Amount:   amount,
	})
	require.NoError(t, err)
}

func TestFinanceSummaryTotals(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Raju", "9000000201", 500)

	addPayment(t, testCtx, worker.ID, "Salary", 1000)
	addPayment(t, testCtx, worker.ID, "salary", 2000) // case-insensitive
	addPayment(t, testCtx, worker.ID, "Advance", 500)

	summary, err := testCtx.Service.GetFinanceSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, summary.TotalSalaryPaid)
	assert.Equal(t, 500.0, summary.TotalAdvanceGiven)
	assert.Equal(t, 2500.0, summary.Balance)

	// The trailing series is six months wide, chronological, ending on
	// the current month
	require.Len(t, summary.SalaryMonthly, 6)
	require.Len(t, summary.AdvanceMonthly, 6)
	currentMonth := int(time.Now().UTC().Month())
	assert.Equal(t, currentMonth, summary.SalaryMonthly[5].Month)
	assert.Equal(t, 3000.0, summary.SalaryMonthly[5].Total)
	assert.Equal(t, 500.0, summary.AdvanceMonthly[5].Total)

	// Months with no payments are zero-filled, not omitted
	for _, point := range summary.SalaryMonthly[:5] {
		assert.Equal(t, 0.0, point.Total)
	}

	// Reading the summary does not change it
	again, err := testCtx.Service.GetFinanceSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestFinanceSummaryEmptyLedger(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	summary, err := testCtx.Service.GetFinanceSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalSalaryPaid)
	assert.Equal(t, 0.0, summary.TotalAdvanceGiven)
	assert.Equal(t, 0.0, summary.Balance)
	assert.Len(t, summary.SalaryMonthly, 6)
	assert.NotNil(t, summary.TopPaidWorkers)
	assert.Empty(t, summary.TopPaidWorkers)
}

func TestFinanceSummaryTopWorkers(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	// Seven workers with distinct salary totals; only the top five make
	// the leaderboard
	var workers []*models.Worker
	for i := 0; i < 7; i++ {
		w := testCtx.CreateTestWorker(t, fmt.Sprintf("Worker %d", i), fmt.Sprintf("90000003%02d", i), 500)
		workers = append(workers, w)
		addPayment(t, testCtx, w.ID, "Salary", float64((i+1)*1000))
	}

	// Advances must not count toward the ranking
	addPayment(t, testCtx, workers[0].ID, "Advance", 100000)

	summary, err := testCtx.Service.GetFinanceSummary(ctx)
	require.NoError(t, err)

	require.Len(t, summary.TopPaidWorkers, 5)
	assert.Equal(t, workers[6].ID, summary.TopPaidWorkers[0].WorkerID)
	assert.Equal(t, 7000.0, summary.TopPaidWorkers[0].TotalSalary)
	assert.Equal(t, "Worker 6", summary.TopPaidWorkers[0].Name)
	assert.Equal(t, workers[2].ID, summary.TopPaidWorkers[4].WorkerID)
	assert.Equal(t, 3000.0, summary.TopPaidWorkers[4].TotalSalary)
}

func TestAddPaymentValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	ctx := context.Background()

	worker := testCtx.CreateTestWorker(t, "Vijay", "9000000401", 500)

	// Test case 1: Unknown worker
	_, err := testCtx.Service.AddPayment(ctx, models.AddPaymentRequest{
		WorkerID: "no-such-worker",
		Type:     "Salary",
		Amount:   100,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	// Test case 2: Unrecognized payment type
	_, err = testCtx.Service.AddPayment(ctx, models.AddPaymentRequest{
		WorkerID: worker.ID,
		Type:     "Bonus",
		Amount:   100,
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	// Test case 3: Non-positive amount
	_, err = testCtx.Service.AddPayment(ctx, models.AddPaymentRequest{
		WorkerID: worker.ID,
		Type:     "Advance",
		Amount:   0,
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	// Test case 4: Date defaults to today when omitted
	payment, err := testCtx.Service.AddPayment(ctx, models.AddPaymentRequest{
		WorkerID: worker.ID,
		Type:     "Advance",
		Amount:   250,
	})
	require.NoError(t, err)
	assert.True(t, payment.Date.Equal(models.Today().Time))

	// Test case 5: Deleting an unknown payment
	err = testCtx.Service.DeletePayment(ctx, "no-such-payment")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
