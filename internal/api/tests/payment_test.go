package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sitetrack/site-server/internal/api/testutils"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPaymentEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Pay Worker", "9200000001", 500)

	// Test case 1: Successful payment
	req := models.AddPaymentRequest{
		WorkerID: worker.ID,
		Type:     "Advance",
		Amount:   750,
		Note:     "Festival advance",
	}

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/payments", req, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, models.PaymentAdvance, payment.Type)

	// Test case 2: Unrecognized payment type
	req.Type = "Bonus"
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/payments", req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 3: Unknown worker
	req.Type = "Salary"
	req.WorkerID = "no-such-worker"
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/payments", req, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test case 4: Missing amount fails binding
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/payments",
		map[string]string{"workerId": worker.ID, "type": "Salary"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 5: Listing returns the one payment
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/payments", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var payments []models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	assert.Len(t, payments, 1)

	// Test case 6: Delete, then the list is empty again
	w = testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/payments/"+payment.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/payments", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGenerateSalaryEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Salary Worker", "9200000011", 500)

	for _, day := range []string{"2026-08-03", "2026-08-04", "2026-08-05"} {
		w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance",
			models.MarkAttendanceRequest{WorkerID: worker.ID, Date: day, Status: "Present"}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Test case 1: Salary generation requires a token
	w := testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/payments/generate-salary/"+worker.ID, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Test case 2: With a token, the payment is derived from Present marks
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/payments/generate-salary/"+worker.ID, nil, testutils.AuthHeaders(testCtx.AdminJWT))
	assert.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.Equal(t, models.PaymentSalary, payment.Type)
	assert.Equal(t, 1500.0, payment.Amount) // 3 present days * 500

	// Test case 3: Unknown worker
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/payments/generate-salary/no-such-worker", nil, testutils.AuthHeaders(testCtx.AdminJWT))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test case 4: The run across all workers reports results per worker
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/payments/generate-salary", nil, testutils.AuthHeaders(testCtx.AdminJWT))
	assert.Equal(t, http.StatusOK, w.Code)

	var result models.SalaryRunResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Generated, 1)
	assert.Empty(t, result.Failures)
}

func TestFinanceSummaryEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Finance Worker", "9200000021", 500)

	for _, p := range []models.AddPaymentRequest{
		{WorkerID: worker.ID, Type: "Salary", Amount: 1000},
		{WorkerID: worker.ID, Type: "Salary", Amount: 2000},
		{WorkerID: worker.ID, Type: "Advance", Amount: 500},
	} {
		w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/payments", p, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/payments/finance-summary", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.FinanceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3000.0, summary.TotalSalaryPaid)
	assert.Equal(t, 500.0, summary.TotalAdvanceGiven)
	assert.Equal(t, 2500.0, summary.Balance)
	assert.Len(t, summary.SalaryMonthly, 6)
	require.Len(t, summary.TopPaidWorkers, 1)
	assert.Equal(t, worker.ID, summary.TopPaidWorkers[0].WorkerID)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Dash Worker", "9200000031", 500)

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance",
		models.MarkAttendanceRequest{WorkerID: worker.ID, Date: models.Today().String(), Status: "Present"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/dashboard/summary", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalWorkers)
	assert.Equal(t, 1, summary.TotalAttendanceRecords)
	require.Len(t, summary.WeeklyAttendance, 7)
	assert.Equal(t, 1, summary.WeeklyAttendance[6].Attendance)
}
