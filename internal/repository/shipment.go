package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	Base[models.Shipment]
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{NewBase[models.Shipment](db, "shipment", "shipment_id", "Customer", "TruckTrip")}
}
