package handler

import (
	"net/http"

	"fleet-equipment-tracker/internal/usecase/workorder"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WorkorderHandler struct {
	service *workorder.Service
}

func NewWorkorderHandler(service *workorder.Service) *WorkorderHandler {
	return &WorkorderHandler{service: service}
}

func (h *WorkorderHandler) RegisterRoutes(router *gin.RouterGroup) {
	workorders := router.Group("/workorders")
	{
		workorders.GET("", h.ListWorkorders)
		workorders.GET("/:number", h.GetWorkorder)
	}
}

func (h *WorkorderHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	workorders := router.Group("/workorders")
	{
		workorders.POST("", h.CreateWorkorder)
		workorders.PATCH("/:number", h.UpdateWorkorder)
		workorders.DELETE("/:number", h.DeleteWorkorder)
	}
}

func (h *WorkorderHandler) CreateWorkorder(c *gin.Context) {
	var req workorder.CreateWorkorderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateWorkorder(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Workorder created successfully", created)
}

func (h *WorkorderHandler) GetWorkorder(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workorder number required")
		return
	}

	item, err := h.service.GetWorkorder(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workorder retrieved successfully", item)
}

func (h *WorkorderHandler) ListWorkorders(c *gin.Context) {
	var filter workorder.WorkorderFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, err := h.service.ListWorkorders(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workorders retrieved successfully", items)
}

func (h *WorkorderHandler) UpdateWorkorder(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workorder number required")
		return
	}

	var req workorder.UpdateWorkorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateWorkorder(c.Request.Context(), number, &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workorder updated successfully", updated)
}

func (h *WorkorderHandler) DeleteWorkorder(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workorder number required")
		return
	}

	if err := h.service.DeleteWorkorder(c.Request.Context(), number); err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workorder deleted successfully", nil)
}
