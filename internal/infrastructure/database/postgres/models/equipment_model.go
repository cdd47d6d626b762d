package models

import (
	"time"
)

// EquipmentModel represents the database model for equipment units.
// Equipment IDs come from fleet inventory files as plain integers.
type EquipmentModel struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement:false"`
	Name                string     `gorm:"column:equipment_name;type:varchar(255);not null;index"`
	CampName            string     `gorm:"type:varchar(255);not null;index"`
	Region              *string    `gorm:"type:varchar(255)"`
	Status              string     `gorm:"type:varchar(50);not null;default:'ReadyToUse'"`
	NextMaintenanceDate *time.Time `gorm:"type:date"`
	StartDate           *time.Time `gorm:"type:date"`
	EndDate             *time.Time `gorm:"type:date"`
	CreatedAt           time.Time  `gorm:"not null"`
	UpdatedAt           time.Time  `gorm:"not null"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}
