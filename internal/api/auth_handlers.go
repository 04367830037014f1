package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack/site-server/internal/models"
)

// Login authenticates a worker by phone and password
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword sets a new password for a worker
func (h *Handler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Password changed successfully"})
}

// ResetPassword resets a worker's password back to their phone number
func (h *Handler) ResetPassword(c *gin.Context) {
	if err := h.svc.ResetPassword(c.Request.Context(), c.Param("workerId")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Password reset"})
}
