package equipment

import (
	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/utils"
)

// ApplyUpdate copies the non-nil fields of req onto e. Status values are
// checked against the known enumeration before anything is assigned, so
// a rejected update leaves the entity unchanged.
func ApplyUpdate(e *domainEquipment.Equipment, req *UpdateEquipmentRequest) error {
	if req.Status != nil && !domainEquipment.ValidStatus(domainEquipment.Status(*req.Status)) {
		return appErrors.NewAppError("INVALID_STATUS", "Unknown equipment status", domainEquipment.ErrInvalidStatus)
	}

	nextMaintenance, err := parseOptionalDate(req.NextMaintenanceDate)
	if err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid next_maintenance_date", err)
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid start_date", err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid end_date", err)
	}

	if req.Name != nil {
		e.Name = utils.SanitizeString(*req.Name)
	}
	if req.CampName != nil {
		e.CampName = utils.SanitizeString(*req.CampName)
	}
	if req.Region != nil {
		e.Region = req.Region
	}
	if req.Status != nil {
		e.Status = domainEquipment.Status(*req.Status)
	}
	if req.NextMaintenanceDate != nil {
		e.NextMaintenanceDate = nextMaintenance
	}
	if req.StartDate != nil {
		e.StartDate = startDate
	}
	if req.EndDate != nil {
		e.EndDate = endDate
	}

	return nil
}
