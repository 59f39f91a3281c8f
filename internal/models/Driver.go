package models

// Driver is an employee role. A driver can sit in either of the two
// driver slots of a truck trip; deleting the driver clears the slot
// instead of deleting the trip.
type Driver struct {
	DriverID       uint   `gorm:"column:driver_id;primaryKey" json:"driver_id"`
	EmployeeID     uint   `gorm:"column:employee_id;not null" json:"employee_id"`
	DriverCategory string `gorm:"column:driver_category;type:varchar(255);not null" json:"driver_category"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`

	TruckTrips1 []TruckTrip `gorm:"foreignKey:Driver1ID;references:DriverID;constraint:OnDelete:SET NULL" json:"truckTrips1"`
	TruckTrips2 []TruckTrip `gorm:"foreignKey:Driver2ID;references:DriverID;constraint:OnDelete:SET NULL" json:"truckTrips2"`
}
