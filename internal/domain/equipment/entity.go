package equipment

import (
	"time"
)

// Equipment represents one physical fleet unit stationed at a camp.
type Equipment struct {
	ID                  int64
	Name                string
	CampName            string
	Region              *string
	Status              Status
	NextMaintenanceDate *time.Time
	StartDate           *time.Time
	EndDate             *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Status represents the lifecycle status of an equipment unit. No state
// machine is enforced; external writers may set any status at any time.
type Status string

const (
	StatusReadyToUse       Status = "ReadyToUse"
	StatusUnderMaintenance Status = "UnderMaintenance"
	StatusAllocated        Status = "Allocated"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusReadyToUse, StatusUnderMaintenance, StatusAllocated:
		return true
	}
	return false
}

// IsAvailable reports whether the unit can be allocated for the closed
// window [start, end]. Units not ReadyToUse are never available. A unit
// carrying its own occupancy window blocks any request that overlaps it;
// a unit missing either of its own dates has no known occupancy
// constraint and is treated as available.
func (e *Equipment) IsAvailable(start, end time.Time) bool {
	if e.Status != StatusReadyToUse {
		return false
	}

	if e.StartDate != nil && e.EndDate != nil {
		// closed-interval overlap: own.start <= req.end && req.start <= own.end
		overlap := !e.StartDate.After(end) && !start.After(*e.EndDate)
		return !overlap
	}

	return true
}
