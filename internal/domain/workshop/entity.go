package workshop

import "time"

// Workshop represents one camp's maintenance facility. CampName is the
// join key associating equipment with a camp and is expected unique per
// camp, though not enforced. Either coordinate may be absent.
type Workshop struct {
	ID          string
	CampName    string
	LocationLat *float64
	LocationLon *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasLocation reports whether both coordinates are known.
func (w *Workshop) HasLocation() bool {
	return w.LocationLat != nil && w.LocationLon != nil
}
