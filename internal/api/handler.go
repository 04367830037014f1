package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/service"
	"github.com/sitetrack/site-server/internal/utils"
)

// Handler holds the API dependencies
type Handler struct {
	svc    service.Service
	logger *utils.Logger
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: utils.NewLogger(),
	}
}

// SetupRoutes registers all API routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/worker/login", h.Login)
		auth.POST("/worker/change-password", h.ChangePassword)
		auth.POST("/admin/reset-password/:workerId", AuthMiddleware(), h.ResetPassword)
	}

	workers := router.Group("/api/workers")
	{
		workers.POST("", h.CreateWorker)
		workers.GET("", h.GetAllWorkers)
		workers.GET("/:id", h.GetWorker)
		workers.GET("/project/:projectId", h.GetWorkersByProject)
		workers.DELETE("/:id", h.DeleteWorker)
	}

	projects := router.Group("/api/projects")
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.GetAllProjects)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.PATCH("/:id/status", h.UpdateProjectStatus)
		projects.DELETE("/:id", h.DeleteProject)
	}

	tasks := router.Group("/api/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.GetAllTasks)
		tasks.GET("/project/:projectId", h.GetTasksByProject)
		tasks.GET("/worker/:workerId", h.GetTasksByWorker)
		tasks.GET("/status/:status", h.GetTasksByStatus)
		tasks.PATCH("/:id/status", h.UpdateTaskStatus)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	materials := router.Group("/api/materials")
	{
		materials.POST("", h.CreateMaterial)
		materials.GET("", h.GetAllMaterials)
		materials.GET("/:id", h.GetMaterial)
		materials.GET("/project/:projectId", h.GetMaterialsByProject)
		materials.DELETE("/:id", h.DeleteMaterial)
	}

	attendance := router.Group("/api/attendance")
	{
		attendance.POST("", h.MarkAttendance)
		attendance.POST("/bulk", h.MarkAttendanceBulk)
		attendance.PUT("/:id", h.UpdateAttendance)
		attendance.GET("", h.GetAllAttendance)
		attendance.GET("/worker/:workerId", h.GetAttendanceByWorker)
		attendance.GET("/project/:projectId", h.GetAttendanceByProject)
		attendance.GET("/project/:projectId/worker/:workerId", h.GetAttendanceByProjectAndWorker)
		attendance.DELETE("/:id", h.DeleteAttendance)
		attendance.DELETE("/worker/:workerId", h.DeleteAttendanceByWorker)
	}

	payments := router.Group("/api/payments")
	{
		payments.POST("", h.AddPayment)
		payments.GET("", h.GetAllPayments)
		payments.GET("/worker/:workerId", h.GetPaymentsByWorker)
		payments.DELETE("/:id", h.DeletePayment)
		payments.POST("/generate-salary/:workerId", AuthMiddleware(), h.GenerateSalary)
		payments.POST("/generate-salary", AuthMiddleware(), h.GenerateSalaryForAllWorkers)
		payments.GET("/finance-summary", h.GetFinanceSummary)
	}

	router.GET("/api/dashboard/summary", h.GetDashboardSummary)
}

// handleError translates service error kinds into HTTP responses
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:  "error",
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrDuplicateAttendance):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Status:  "error",
			Code:    "DUPLICATE_ATTENDANCE",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_RANGE",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Status:  "error",
			Code:    "UNAUTHORIZED",
			Message: "Invalid credentials",
		})
	default:
		h.logger.Error("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Code:    "INTERNAL_ERROR",
			Message: "An internal error occurred",
		})
	}
}

// badRequest rejects a structurally malformed request body
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "VALIDATION_ERROR",
		Message: err.Error(),
	})
}

// respondList returns 204 for an empty result set, which is a valid
// "no content" outcome distinct from a malformed request
func respondList[T any](c *gin.Context, list []T) {
	if len(list) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, list)
}

// rangeParams reads the optional from/to query parameters. Supplying only
// one end, or an unparseable date, is a malformed range.
func rangeParams(c *gin.Context) (models.Date, models.Date, bool, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" && toStr == "" {
		return models.Date{}, models.Date{}, false, nil
	}

	from, err := models.ParseDate(fromStr)
	if err != nil {
		return models.Date{}, models.Date{}, true, err
	}

	to, err := models.ParseDate(toStr)
	if err != nil {
		return models.Date{}, models.Date{}, true, err
	}

	return from, to, true, nil
}

// invalidRange rejects a malformed or inverted date range
func invalidRange(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "INVALID_RANGE",
		Message: err.Error(),
	})
}
