package workshop

import "context"

// Repository defines the interface for workshop repository operations
type Repository interface {
	Create(ctx context.Context, w *Workshop) error
	GetByID(ctx context.Context, id string) (*Workshop, error)
	// FindByCampName resolves a camp by name, case-insensitive exact
	// match. Returns ErrCampNotFound when no workshop matches.
	FindByCampName(ctx context.Context, campName string) (*Workshop, error)
	// List returns workshops matching the filter; a nil filter returns
	// all workshops.
	List(ctx context.Context, filter *Filter) ([]*Workshop, error)
	Update(ctx context.Context, w *Workshop) error
	Delete(ctx context.Context, id string) error
}

// Filter represents filtering options for listing workshops
type Filter struct {
	CampName string // case-insensitive substring
	LatMin   *float64
	LatMax   *float64
	LonMin   *float64
	LonMax   *float64
}
