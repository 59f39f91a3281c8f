package models

import "time"

type TruckRepair struct {
	RepairID      uint      `gorm:"column:repair_id;primaryKey" json:"repair_id"`
	StartDate     time.Time `gorm:"column:start_date;type:timestamp;default:CURRENT_TIMESTAMP" json:"start_date"`
	EndDate       time.Time `gorm:"column:end_date;type:timestamp;default:CURRENT_TIMESTAMP" json:"end_date"`
	EstimatedDays int       `gorm:"column:estimated_days;not null" json:"estimated_days"`

	TruckID    *uint     `gorm:"column:truck_id" json:"truck_id,omitempty"`
	Truck      *Truck    `gorm:"foreignKey:TruckID;references:TruckID" json:"truck,omitempty"`
	MechanicID *uint     `gorm:"column:mechanic_id" json:"mechanic_id,omitempty"`
	Mechanic   *Mechanic `gorm:"foreignKey:MechanicID;references:MechanicID" json:"mechanic,omitempty"`
}
