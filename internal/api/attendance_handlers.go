package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack/site-server/internal/models"
	"github.com/sitetrack/site-server/internal/utils"
)

// MarkAttendance records a single attendance mark
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	att, err := h.svc.MarkAttendance(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, att)
}

// MarkAttendanceBulk records attendance for several workers, all forced
// to today's date
func (h *Handler) MarkAttendanceBulk(c *gin.Context) {
	var entries []models.BulkAttendanceEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, err)
		return
	}

	// Slice elements are not validated by the binding step
	for _, entry := range entries {
		if errs := utils.ValidateStruct(entry); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, errs)
			return
		}
	}

	created, err := h.svc.MarkAttendanceBulk(c.Request.Context(), entries)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateAttendance changes status and/or overtime and recomputes pay
func (h *Handler) UpdateAttendance(c *gin.Context) {
	var req models.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	att, err := h.svc.UpdateAttendance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, att)
}

// GetAllAttendance lists all attendance, optionally limited to an
// inclusive date range
func (h *Handler) GetAllAttendance(c *gin.Context) {
	from, to, hasRange, err := rangeParams(c)
	if err != nil {
		invalidRange(c, err)
		return
	}

	var records []models.Attendance
	if hasRange {
		records, err = h.svc.GetAttendanceByRange(c.Request.Context(), from, to)
	} else {
		records, err = h.svc.GetAllAttendance(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, records)
}

// GetAttendanceByWorker lists a worker's attendance, optionally limited
// to an inclusive date range
func (h *Handler) GetAttendanceByWorker(c *gin.Context) {
	workerID := c.Param("workerId")

	from, to, hasRange, err := rangeParams(c)
	if err != nil {
		invalidRange(c, err)
		return
	}

	var records []models.Attendance
	if hasRange {
		records, err = h.svc.GetAttendanceByWorkerAndRange(c.Request.Context(), workerID, from, to)
	} else {
		records, err = h.svc.GetAttendanceByWorker(c.Request.Context(), workerID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, records)
}

// GetAttendanceByProject lists a project's attendance, optionally limited
// to an inclusive date range
func (h *Handler) GetAttendanceByProject(c *gin.Context) {
	projectID := c.Param("projectId")

	from, to, hasRange, err := rangeParams(c)
	if err != nil {
		invalidRange(c, err)
		return
	}

	var records []models.Attendance
	if hasRange {
		records, err = h.svc.GetAttendanceByProjectAndRange(c.Request.Context(), projectID, from, to)
	} else {
		records, err = h.svc.GetAttendanceByProject(c.Request.Context(), projectID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, records)
}

func (h *Handler) GetAttendanceByProjectAndWorker(c *gin.Context) {
	records, err := h.svc.GetAttendanceByProjectAndWorker(
		c.Request.Context(), c.Param("projectId"), c.Param("workerId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, records)
}

func (h *Handler) DeleteAttendance(c *gin.Context) {
	if err := h.svc.DeleteAttendance(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAttendanceByWorker(c *gin.Context) {
	if err := h.svc.DeleteAttendanceByWorker(c.Request.Context(), c.Param("workerId")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
