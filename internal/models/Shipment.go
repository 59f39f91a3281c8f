package models

// Shipment carries monetary/weight values as decimal(10,2) columns so
// totals don't drift the way raw floats would.
type Shipment struct {
	ShipmentID  uint    `gorm:"column:shipment_id;primaryKey" json:"shipment_id"`
	Weight      float64 `gorm:"column:weight;type:decimal(10,2);not null" json:"weight"`
	Value       float64 `gorm:"column:value;type:decimal(10,2);not null" json:"value"`
	Origin      string  `gorm:"column:origin;type:varchar(255);not null" json:"origin"`
	Destination string  `gorm:"column:destination;type:varchar(255);not null" json:"destination"`

	CustomerID  *uint      `gorm:"column:customer_id" json:"customer_id,omitempty"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	TruckTripID *uint      `gorm:"column:truck_trip_id" json:"truck_trip_id,omitempty"`
	TruckTrip   *TruckTrip `gorm:"foreignKey:TruckTripID;references:TruckTripID" json:"truckTrip,omitempty"`
}
