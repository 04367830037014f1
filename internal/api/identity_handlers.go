package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitetrack/site-server/internal/models"
)

// Worker handlers
func (h *Handler) CreateWorker(c *gin.Context) {
	var req models.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	worker, err := h.svc.CreateWorker(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

func (h *Handler) GetWorker(c *gin.Context) {
	worker, err := h.svc.GetWorker(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

func (h *Handler) GetAllWorkers(c *gin.Context) {
	workers, err := h.svc.GetAllWorkers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, workers)
}

func (h *Handler) GetWorkersByProject(c *gin.Context) {
	workers, err := h.svc.GetWorkersByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, workers)
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	if err := h.svc.DeleteWorker(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Project handlers
func (h *Handler) CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) GetAllProjects(c *gin.Context) {
	projects, err := h.svc.GetAllProjects(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, projects)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.svc.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProjectStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.svc.UpdateProjectStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Task handlers
func (h *Handler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetAllTasks(c *gin.Context) {
	tasks, err := h.svc.GetAllTasks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, tasks)
}

func (h *Handler) GetTasksByProject(c *gin.Context) {
	tasks, err := h.svc.GetTasksByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, tasks)
}

func (h *Handler) GetTasksByWorker(c *gin.Context) {
	tasks, err := h.svc.GetTasksByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, tasks)
}

func (h *Handler) GetTasksByStatus(c *gin.Context) {
	tasks, err := h.svc.GetTasksByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, tasks)
}

func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.svc.UpdateTaskStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.svc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Material handlers
func (h *Handler) CreateMaterial(c *gin.Context) {
	var req models.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	material, err := h.svc.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, material)
}

func (h *Handler) GetMaterial(c *gin.Context) {
	material, err := h.svc.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, material)
}

func (h *Handler) GetAllMaterials(c *gin.Context) {
	materials, err := h.svc.GetAllMaterials(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, materials)
}

func (h *Handler) GetMaterialsByProject(c *gin.Context) {
	materials, err := h.svc.GetMaterialsByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondList(c, materials)
}

func (h *Handler) DeleteMaterial(c *gin.Context) {
	if err := h.svc.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
