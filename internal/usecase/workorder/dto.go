package workorder

import (
	"time"

	domainWorkorder "fleet-equipment-tracker/internal/domain/workorder"
)

type CreateWorkorderRequest struct {
	Number               string  `json:"workorder_number" validate:"required,min=1,max=50"`
	EquipmentID          int64   `json:"equipment_id" validate:"required,min=1"`
	WorkshopID           *string `json:"workshop_id" validate:"omitempty,max=50"`
	Description          *string `json:"workorder_description" validate:"omitempty,max=2000"`
	MaintenanceStartDate *string `json:"maintenance_start_date" validate:"omitempty,datetime=2006-01-02"`
	MaintenanceEndDate   *string `json:"maintenance_end_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateWorkorderRequest carries a sparse set of field overrides; absent
// fields are left untouched.
type UpdateWorkorderRequest struct {
	EquipmentID          *int64  `json:"equipment_id" validate:"omitempty,min=1"`
	WorkshopID           *string `json:"workshop_id" validate:"omitempty,max=50"`
	Description          *string `json:"workorder_description" validate:"omitempty,max=2000"`
	MaintenanceStartDate *string `json:"maintenance_start_date" validate:"omitempty,datetime=2006-01-02"`
	MaintenanceEndDate   *string `json:"maintenance_end_date" validate:"omitempty,datetime=2006-01-02"`
}

type WorkorderFilterRequest struct {
	EquipmentID *int64  `form:"equipment_id" validate:"omitempty,min=1"`
	WorkshopID  *string `form:"workshop_id"`
	Page        int     `form:"page" validate:"omitempty,min=1"`
	PageSize    int     `form:"page_size" validate:"omitempty,min=1,max=200"`
}

type WorkorderResponse struct {
	Number               string     `json:"workorder_number"`
	EquipmentID          int64      `json:"equipment_id"`
	WorkshopID           *string    `json:"workshop_id"`
	Description          *string    `json:"workorder_description"`
	MaintenanceStartDate *time.Time `json:"maintenance_start_date"`
	MaintenanceEndDate   *time.Time `json:"maintenance_end_date"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type WorkorderListResponse struct {
	Workorders []WorkorderResponse `json:"workorders"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

func toWorkorderResponse(w *domainWorkorder.Workorder) *WorkorderResponse {
	return &WorkorderResponse{
		Number:               w.Number,
		EquipmentID:          w.EquipmentID,
		WorkshopID:           w.WorkshopID,
		Description:          w.Description,
		MaintenanceStartDate: w.MaintenanceStartDate,
		MaintenanceEndDate:   w.MaintenanceEndDate,
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}
