package ingestion

import (
	"errors"
	"fmt"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
)

var (
	ErrMissingEquipmentID = errors.New("status update missing equipment id")
	ErrUnknownStatus      = errors.New("status update carries unknown status")
)

const dateLayout = "2006-01-02"

// ValidateStatusUpdate rejects malformed messages before any write
// happens. Unknown enumerated values never reach the store.
func ValidateStatusUpdate(msg *StatusUpdateMessage) error {
	if msg.EquipmentID <= 0 {
		return ErrMissingEquipmentID
	}

	if !domainEquipment.ValidStatus(domainEquipment.Status(msg.Status)) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, msg.Status)
	}

	for _, d := range []*string{msg.StartDate, msg.EndDate, msg.NextMaintenanceDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *d); err != nil {
			return fmt.Errorf("invalid date in status update: %w", err)
		}
	}

	return nil
}

func parseDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil
	}
	return &t
}
