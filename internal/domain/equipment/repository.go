package equipment

import (
	"context"
	"time"
)

// Repository defines the interface for equipment repository operations
type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id int64) (*Equipment, error)
	// FindByCampAndName selects equipment whose camp name and equipment
	// name both contain the given fragments, case-insensitively. Either
	// fragment may be empty, which matches everything.
	FindByCampAndName(ctx context.Context, campName, name string) ([]*Equipment, error)
	List(ctx context.Context, filter *Filter) ([]*Equipment, int64, error)
	Update(ctx context.Context, e *Equipment) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	UpdateOccupancy(ctx context.Context, id int64, start, end, nextMaintenance *time.Time) error
	Delete(ctx context.Context, id int64) error
}

// Filter represents filtering options for listing equipment
type Filter struct {
	CampName string
	Name     string
	Region   string
	Status   *Status
	Page     int
	PageSize int
}
