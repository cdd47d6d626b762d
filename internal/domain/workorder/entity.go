package workorder

import "time"

// Workorder represents a maintenance job for one equipment unit,
// optionally assigned to a workshop. Workorders are bookkeeping only:
// demand matching reads occupancy windows from Equipment, not from
// workorder records.
type Workorder struct {
	Number               string
	EquipmentID          int64
	WorkshopID           *string
	Description          *string
	MaintenanceStartDate *time.Time
	MaintenanceEndDate   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
