package models

import "time"

// WorkshopModel represents the database model for camp workshops.
// Workshop IDs are strings of the form WS_001.
type WorkshopModel struct {
	ID          string    `gorm:"column:workshop_id;type:varchar(50);primaryKey"`
	CampName    string    `gorm:"type:varchar(255);not null;index"`
	LocationLat *float64  `gorm:"type:double precision"`
	LocationLon *float64  `gorm:"type:double precision"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (WorkshopModel) TableName() string {
	return "workshops"
}
