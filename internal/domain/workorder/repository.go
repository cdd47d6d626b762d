package workorder

import "context"

// Repository defines the interface for workorder repository operations
type Repository interface {
	Create(ctx context.Context, w *Workorder) error
	GetByNumber(ctx context.Context, number string) (*Workorder, error)
	List(ctx context.Context, filter *Filter) ([]*Workorder, int64, error)
	Update(ctx context.Context, w *Workorder) error
	Delete(ctx context.Context, number string) error
}

// Filter represents filtering options for listing workorders
type Filter struct {
	EquipmentID *int64
	WorkshopID  *string
	Page        int
	PageSize    int
}
