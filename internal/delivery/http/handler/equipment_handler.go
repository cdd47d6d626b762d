package handler

import (
	"net/http"
	"strconv"

	"fleet-equipment-tracker/internal/usecase/equipment"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	service *equipment.Service
}

func NewEquipmentHandler(service *equipment.Service) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

func (h *EquipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/equipment")
	{
		items.GET("", h.ListEquipment)
		items.GET("/:id", h.GetEquipment)
	}
}

func (h *EquipmentHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	items := router.Group("/equipment")
	{
		items.POST("", h.CreateEquipment)
		items.PATCH("/:id", h.UpdateEquipment)
		items.DELETE("/:id", h.DeleteEquipment)
	}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req equipment.CreateEquipmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateEquipment(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Equipment created successfully", created)
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	item, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment retrieved successfully", item)
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	var filter equipment.EquipmentFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, err := h.service.ListEquipment(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment retrieved successfully", items)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	var req equipment.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateEquipment(c.Request.Context(), id, &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", updated)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment deleted successfully", nil)
}
