package models

import "time"

// WorkorderModel represents the database model for maintenance
// workorders. Workorder numbers are strings of the form WO_0001.
type WorkorderModel struct {
	Number               string     `gorm:"column:workorder_number;type:varchar(50);primaryKey"`
	EquipmentID          int64      `gorm:"not null;index"`
	WorkshopID           *string    `gorm:"type:varchar(50);index"`
	Description          *string    `gorm:"column:workorder_description;type:text"`
	MaintenanceStartDate *time.Time `gorm:"type:date"`
	MaintenanceEndDate   *time.Time `gorm:"type:date"`
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            time.Time  `gorm:"not null"`

	Equipment *EquipmentModel `gorm:"foreignKey:EquipmentID;references:ID"`
	Workshop  *WorkshopModel  `gorm:"foreignKey:WorkshopID;references:ID"`
}

func (WorkorderModel) TableName() string {
	return "workorders"
}
