package models

// Employee is the person record behind driver and mechanic roles.
// Removing an employee removes every role record that points at it.
type Employee struct {
	EmployeeID     uint   `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	FirstName      string `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName       string `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	YearsOfService int    `gorm:"column:years_of_service;not null" json:"years_of_service"`

	Drivers   []Driver   `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"drivers"`
	Mechanics []Mechanic `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"mechanics"`
}
