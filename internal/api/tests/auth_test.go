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

func TestWorkerLoginEndpoint(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Login Worker", "9300000001", 500)

	// Test case 1: First-time login with the phone-number default
	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/login",
		models.LoginRequest{Phone: worker.Phone, Password: worker.Phone}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.MustResetPassword)

	// Test case 2: Wrong password
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/login",
		models.LoginRequest{Phone: worker.Phone, Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Test case 3: Missing fields fail binding
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/login",
		map[string]string{"phone": worker.Phone}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeAndResetPasswordEndpoints(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	worker := testCtx.CreateTestWorker(t, "Password Worker", "9300000011", 500)

	// Test case 1: Change to a proper password
	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/change-password",
		models.ChangePasswordRequest{WorkerID: worker.ID, NewPassword: "strong-pass"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/login",
		models.LoginRequest{Phone: worker.Phone, Password: "strong-pass"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Test case 2: Too-short password fails binding
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/change-password",
		models.ChangePasswordRequest{WorkerID: worker.ID, NewPassword: "abc"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 3: Admin reset requires a token
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/auth/admin/reset-password/"+worker.ID, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Test case 4: Authorized reset restores the phone-number default
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/auth/admin/reset-password/"+worker.ID, nil, testutils.AuthHeaders(testCtx.AdminJWT))
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/worker/login",
		models.LoginRequest{Phone: worker.Phone, Password: worker.Phone}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.MustResetPassword)

	// Test case 5: A garbage token is rejected
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost,
		"/api/auth/admin/reset-password/"+worker.ID, nil, testutils.AuthHeaders("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
