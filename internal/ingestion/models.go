package ingestion

// StatusUpdateMessage is published by external workorder processes when
// a unit's lifecycle status or planned occupancy changes. Dates are ISO
// yyyy-mm-dd strings; absent date fields leave the stored occupancy
// untouched.
type StatusUpdateMessage struct {
	EquipmentID         int64   `json:"equipment_id"`
	Status              string  `json:"status"`
	StartDate           *string `json:"start_date,omitempty"`
	EndDate             *string `json:"end_date,omitempty"`
	NextMaintenanceDate *string `json:"next_maintenance_date,omitempty"`
	Source              string  `json:"source,omitempty"`
}
