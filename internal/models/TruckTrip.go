package models

// TruckTrip is one run of a truck over a route, with up to two drivers.
// driver1/driver2 are nullable on purpose: the trip outlives its drivers.
type TruckTrip struct {
	TruckTripID uint   `gorm:"column:truck_trip_id;primaryKey" json:"truck_trip_id"`
	Route       string `gorm:"column:route;type:varchar(255);not null;default:'Unknown Route'" json:"route"`

	TruckID   *uint   `gorm:"column:truck_id" json:"truck_id,omitempty"`
	Truck     *Truck  `gorm:"foreignKey:TruckID;references:TruckID" json:"truck"`
	Driver1ID *uint   `gorm:"column:driver1_id" json:"driver1_id,omitempty"`
	Driver1   *Driver `gorm:"foreignKey:Driver1ID;references:DriverID" json:"driver1"`
	Driver2ID *uint   `gorm:"column:driver2_id" json:"driver2_id,omitempty"`
	Driver2   *Driver `gorm:"foreignKey:Driver2ID;references:DriverID" json:"driver2"`

	Shipments []Shipment `gorm:"foreignKey:TruckTripID;references:TruckTripID;constraint:OnDelete:CASCADE" json:"shipments"`
}
