package handler

import (
	"net/http"

	"fleet-equipment-tracker/internal/usecase/workshop"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	service *workshop.Service
}

func NewWorkshopHandler(service *workshop.Service) *WorkshopHandler {
	return &WorkshopHandler{service: service}
}

func (h *WorkshopHandler) RegisterRoutes(router *gin.RouterGroup) {
	workshops := router.Group("/workshops")
	{
		workshops.GET("", h.ListWorkshops)
		workshops.GET("/:id", h.GetWorkshop)
	}
}

func (h *WorkshopHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	workshops := router.Group("/workshops")
	{
		workshops.POST("", h.CreateWorkshop)
		workshops.PATCH("/:id", h.UpdateWorkshop)
		workshops.DELETE("/:id", h.DeleteWorkshop)
	}
}

func (h *WorkshopHandler) CreateWorkshop(c *gin.Context) {
	var req workshop.CreateWorkshopRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateWorkshop(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Workshop created successfully", created)
}

func (h *WorkshopHandler) GetWorkshop(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workshop ID required")
		return
	}

	item, err := h.service.GetWorkshop(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workshop retrieved successfully", item)
}

func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	var filter workshop.WorkshopFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, err := h.service.ListWorkshops(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workshops retrieved successfully", items)
}

func (h *WorkshopHandler) UpdateWorkshop(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workshop ID required")
		return
	}

	var req workshop.UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateWorkshop(c.Request.Context(), id, &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workshop updated successfully", updated)
}

func (h *WorkshopHandler) DeleteWorkshop(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Workshop ID required")
		return
	}

	if err := h.service.DeleteWorkshop(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Workshop deleted successfully", nil)
}
