package demand

// CheckDemandRequest asks whether a camp can supply a quantity of an
// equipment type for a date window. Dates are ISO yyyy-mm-dd. The
// equipment name is matched as a case-insensitive substring, the camp
// name as a case-insensitive exact name.
type CheckDemandRequest struct {
	CampName      string   `json:"camp_name" validate:"required,min=1,max=255"`
	EquipmentName string   `json:"equipment_name" validate:"required,min=1,max=255"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Quantity      int      `json:"quantity" validate:"required,min=1"`
	RadiusKm      *float64 `json:"radius_km" validate:"omitempty,gt=0"`
}

// Coordinates is a nullable lat/lon pair for map display.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type RequestedInfo struct {
	EquipmentName string `json:"equipment_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Quantity      int    `json:"quantity"`
}

type AvailabilityInfo struct {
	Available        int  `json:"available"`
	MeetsRequirement bool `json:"meets_requirement"`
}

// MapHint tells the caller whether to render the alternatives map and
// where to center it. Home coordinates are always included, met or not.
type MapHint struct {
	ShowMap  bool        `json:"show_map"`
	Center   Coordinates `json:"center"`
	RadiusKm float64     `json:"radius_km"`
}

type AlternativeCounts struct {
	ReadyToUse       int `json:"ready_to_use"`
	UnderMaintenance int `json:"under_maintenance"`
}

// AlternativeCamp is one nearby camp that could cover unmet demand.
type AlternativeCamp struct {
	CampName   string            `json:"camp_name"`
	WorkshopID string            `json:"workshop_id"`
	DistanceKm float64           `json:"distance_km"`
	Location   Coordinates       `json:"location"`
	Counts     AlternativeCounts `json:"counts"`
}

// DemandResult is the fully materialized answer to one demand check.
type DemandResult struct {
	CampName     string            `json:"camp_name"`
	Requested    RequestedInfo     `json:"requested"`
	Availability AvailabilityInfo  `json:"availability"`
	UI           MapHint           `json:"ui"`
	Alternatives []AlternativeCamp `json:"alternatives"`
}
