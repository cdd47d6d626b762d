package handler

import (
	"net/http"

	"fleet-equipment-tracker/internal/usecase/demand"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DemandHandler struct {
	service *demand.Service
}

func NewDemandHandler(service *demand.Service) *DemandHandler {
	return &DemandHandler{service: service}
}

func (h *DemandHandler) RegisterRoutes(router *gin.RouterGroup) {
	demands := router.Group("/demand")
	{
		demands.POST("/check", h.CheckDemand)
	}
}

func (h *DemandHandler) CheckDemand(c *gin.Context) {
	var req demand.CheckDemandRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CheckDemand(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Demand check completed", result)
}
