package models

// Mechanic is an employee role. Repairs reference the mechanic that
// performed them and disappear with it.
type Mechanic struct {
	MechanicID       uint   `gorm:"column:mechanic_id;primaryKey" json:"mechanic_id"`
	EmployeeID       uint   `gorm:"column:employee_id;not null" json:"employee_id"`
	SpecializedBrand string `gorm:"column:specialized_brand;type:varchar(255);not null;default:Unknown" json:"specialized_brand"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`

	TruckRepairs []TruckRepair `gorm:"foreignKey:MechanicID;references:MechanicID;constraint:OnDelete:CASCADE" json:"truckRepairs"`
}
