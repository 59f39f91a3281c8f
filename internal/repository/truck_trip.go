package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type TruckTripRepository struct {
	Base[models.TruckTrip]
}

func NewTruckTripRepository(db *gorm.DB) *TruckTripRepository {
	return &TruckTripRepository{NewBase[models.TruckTrip](db, "truck trip", "truck_trip_id", "Truck", "Driver1", "Driver2", "Shipments")}
}
