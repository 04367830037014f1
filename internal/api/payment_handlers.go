package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack/site-server/internal/models"
)

// AddPayment records a manual payment against a worker
func (h *Handler) AddPayment(c *gin.Context) {
	var req models.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	payment, err := h.svc.AddPayment(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) GetAllPayments(c *gin.Context) {
	payments, err := h.svc.GetAllPayments(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, payments)
}

func (h *Handler) GetPaymentsByWorker(c *gin.Context) {
	payments, err := h.svc.GetPaymentsByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, payments)
}

func (h *Handler) DeletePayment(c *gin.Context) {
	if err := h.svc.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateSalary derives a salary payment from a worker's accumulated
// Present marks
func (h *Handler) GenerateSalary(c *gin.Context) {
	payment, err := h.svc.GenerateSalary(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GenerateSalaryForAllWorkers runs the salary generator for every known
// worker, reporting per-worker failures without aborting the run
func (h *Handler) GenerateSalaryForAllWorkers(c *gin.Context) {
	result, err := h.svc.GenerateSalaryForAllWorkers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFinanceSummary returns totals, the monthly series, and the salary
// leaderboard
func (h *Handler) GetFinanceSummary(c *gin.Context) {
	summary, err := h.svc.GetFinanceSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDashboardSummary returns site-wide counts and the finance block
func (h *Handler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.svc.GetDashboardSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
