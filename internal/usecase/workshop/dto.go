package workshop

import (
	"time"

	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
)

type CreateWorkshopRequest struct {
	ID          string   `json:"workshop_id" validate:"required,min=1,max=50"`
	CampName    string   `json:"camp_name" validate:"required,min=1,max=255"`
	LocationLat *float64 `json:"location_lat" validate:"omitempty,latitude"`
	LocationLon *float64 `json:"location_lon" validate:"omitempty,longitude"`
}

// UpdateWorkshopRequest carries a sparse set of field overrides; absent
// fields are left untouched.
type UpdateWorkshopRequest struct {
	CampName    *string  `json:"camp_name" validate:"omitempty,min=1,max=255"`
	LocationLat *float64 `json:"location_lat" validate:"omitempty,latitude"`
	LocationLon *float64 `json:"location_lon" validate:"omitempty,longitude"`
}

type WorkshopFilterRequest struct {
	CampName string   `form:"camp_name"`
	LatMin   *float64 `form:"lat_min" validate:"omitempty,latitude"`
	LatMax   *float64 `form:"lat_max" validate:"omitempty,latitude"`
	LonMin   *float64 `form:"lon_min" validate:"omitempty,longitude"`
	LonMax   *float64 `form:"lon_max" validate:"omitempty,longitude"`
}

type WorkshopResponse struct {
	ID          string    `json:"workshop_id"`
	CampName    string    `json:"camp_name"`
	LocationLat *float64  `json:"location_lat"`
	LocationLon *float64  `json:"location_lon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WorkshopListResponse struct {
	Workshops []WorkshopResponse `json:"workshops"`
	Total     int                `json:"total"`
}

func toWorkshopResponse(w *domainWorkshop.Workshop) *WorkshopResponse {
	return &WorkshopResponse{
		ID:          w.ID,
		CampName:    w.CampName,
		LocationLat: w.LocationLat,
		LocationLon: w.LocationLon,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
