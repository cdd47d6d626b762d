package equipment

import (
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
)

type CreateEquipmentRequest struct {
	ID                  int64   `json:"equipment_id" validate:"required,min=1"`
	Name                string  `json:"equipment_name" validate:"required,min=1,max=255"`
	CampName            string  `json:"camp_name" validate:"required,min=1,max=255"`
	Region              *string `json:"region" validate:"omitempty,max=255"`
	Status              *string `json:"status" validate:"omitempty,equipment_status"`
	NextMaintenanceDate *string `json:"next_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	StartDate           *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate             *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEquipmentRequest carries a sparse set of field overrides. Absent
// fields are left untouched; enumerated values are validated before any
// assignment happens.
type UpdateEquipmentRequest struct {
	Name                *string `json:"equipment_name" validate:"omitempty,min=1,max=255"`
	CampName            *string `json:"camp_name" validate:"omitempty,min=1,max=255"`
	Region              *string `json:"region" validate:"omitempty,max=255"`
	Status              *string `json:"status" validate:"omitempty,equipment_status"`
	NextMaintenanceDate *string `json:"next_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	StartDate           *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate             *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type EquipmentFilterRequest struct {
	CampName string `form:"camp_name"`
	Name     string `form:"equipment_name"`
	Region   string `form:"region"`
	Status   string `form:"status"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=200"`
}

type EquipmentResponse struct {
	ID                  int64      `json:"equipment_id"`
	Name                string     `json:"equipment_name"`
	CampName            string     `json:"camp_name"`
	Region              *string    `json:"region"`
	Status              string     `json:"status"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type EquipmentListResponse struct {
	Equipment  []EquipmentResponse `json:"equipment"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

func toEquipmentResponse(e *domainEquipment.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:                  e.ID,
		Name:                e.Name,
		CampName:            e.CampName,
		Region:              e.Region,
		Status:              string(e.Status),
		NextMaintenanceDate: e.NextMaintenanceDate,
		StartDate:           e.StartDate,
		EndDate:             e.EndDate,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
