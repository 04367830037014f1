package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sitetrack/site-server/internal/api"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/service"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key"

// TestContext holds all dependencies for tests
type TestContext struct {
	Router    *gin.Engine
	Repo      *MemoryRepository
	Service   service.Service
	JWTSecret []byte
	AdminJWT  string
}

// SetupTestContext wires a router, service, and in-memory repository for
// a single test. Each test gets its own isolated repository, so there is
// no cross-test cleanup to do.
func SetupTestContext(t *testing.T) *TestContext {
	repo := NewMemoryRepository()
	svc := service.NewDefaultService(repo, testJWTSecret)
	handler := api.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(testJWTSecret))
		c.Next()
	})

	handler.SetupRoutes(router)

	return &TestContext{
		Router:    router,
		Repo:      repo,
		Service:   svc,
		JWTSecret: []byte(testJWTSecret),
		AdminJWT:  SignToken(t, testJWTSecret, "admin"),
	}
}

// SignToken issues a signed JWT for the given subject
func SignToken(t *testing.T, secret, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "Failed to sign JWT token")
	return signed
}

// CreateTestWorker seeds a worker directly in the repository
func (tc *TestContext) CreateTestWorker(t *testing.T, name, phone string, ratePerDay float64) *models.Worker {
	worker := &models.Worker{
		Name:       name,
		Phone:      phone,
		RatePerDay: ratePerDay,
	}
	require.NoError(t, tc.Repo.CreateWorker(context.Background(), worker), "Failed to create test worker")
	return worker
}

// CreateTestProject seeds a project directly in the repository
func (tc *TestContext) CreateTestProject(t *testing.T, name string) *models.Project {
	project := &models.Project{
		Name:   name,
		Status: "Active",
	}
	require.NoError(t, tc.Repo.CreateProject(context.Background(), project), "Failed to create test project")
	return project
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with Authorization token
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}
