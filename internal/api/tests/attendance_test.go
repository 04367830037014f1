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

func TestMarkAttendanceEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "API Worker", "9100000001", 500)

	// Test case 1: Successful mark
	req := models.MarkAttendanceRequest{
		WorkerID:      worker.ID,
		Date:          "2026-08-14",
		Status:        "Present",
		OvertimeHours: 2,
	}

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance", req, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var att models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &att))
	assert.NotEmpty(t, att.ID)
	assert.Equal(t, 625.0, att.TotalPay)

	// Test case 2: Duplicate mark for the same worker and day
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance", req, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "DUPLICATE_ATTENDANCE", errResp.Code)

	// Test case 3: Unrecognized status
	req.Date = "2026-08-15"
	req.Status = "Vacation"
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance", req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 4: Unknown worker
	req.WorkerID = "no-such-worker"
	req.Status = "Present"
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance", req, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test case 5: Missing required fields
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance",
		map[string]string{"workerId": worker.ID}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAttendanceBulkEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w1 := testCtx.CreateTestWorker(t, "Bulk One", "9100000011", 500)
	w2 := testCtx.CreateTestWorker(t, "Bulk Two", "9100000012", 600)

	// Test case 1: Successful bulk mark
	entries := []models.BulkAttendanceEntry{
		{WorkerID: w1.ID, Status: "Present"},
		{WorkerID: w2.ID, Status: "Absent"},
	}

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance/bulk", entries, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created []models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created, 2)

	// Test case 2: Re-running the same batch skips everyone
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance/bulk", entries, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	created = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Empty(t, created)

	// Test case 3: An entry missing its status fails validation
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance/bulk",
		[]models.BulkAttendanceEntry{{WorkerID: w1.ID}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceListAndRange(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: Empty ledger lists as 204
	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/attendance", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	worker := testCtx.CreateTestWorker(t, "Range Worker", "9100000021", 500)
	for _, day := range []string{"2026-08-01", "2026-08-05", "2026-08-20"} {
		w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance",
			models.MarkAttendanceRequest{WorkerID: worker.ID, Date: day, Status: "Present"}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Test case 2: Inclusive range query
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet,
		"/api/attendance?from=2026-08-01&to=2026-08-05", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var records []models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)

	// Test case 3: Inverted range
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet,
		"/api/attendance?from=2026-08-05&to=2026-08-01", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_RANGE", errResp.Code)

	// Test case 4: Half-open range is malformed
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet,
		"/api/attendance?from=2026-08-01", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 5: A range with no records is 204, not an error
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet,
		"/api/attendance?from=2026-07-01&to=2026-07-31", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Test case 6: Per-worker listing
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet,
		"/api/attendance/worker/"+worker.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAndDeleteAttendanceEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Edit Worker", "9100000031", 800)

	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/attendance",
		models.MarkAttendanceRequest{WorkerID: worker.ID, Date: "2026-08-14", Status: "Absent"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var att models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &att))

	// Test case 1: Update recomputes pay
	status := "Present"
	w = testutils.PerformRequest(testCtx.Router, http.MethodPut, "/api/attendance/"+att.ID,
		models.UpdateAttendanceRequest{Status: &status, OvertimeHours: 4}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1200.0, updated.TotalPay)

	// Test case 2: Update of a missing record
	w = testutils.PerformRequest(testCtx.Router, http.MethodPut, "/api/attendance/no-such-id",
		models.UpdateAttendanceRequest{}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test case 3: Delete, then delete again
	w = testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/attendance/"+att.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/attendance/"+att.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
