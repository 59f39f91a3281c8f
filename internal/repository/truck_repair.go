package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type TruckRepairRepository struct {
	Base[models.TruckRepair]
}

func NewTruckRepairRepository(db *gorm.DB) *TruckRepairRepository {
	return &TruckRepairRepository{NewBase[models.TruckRepair](db, "truck repair", "repair_id", "Truck", "Mechanic")}
}

func (r *TruckRepairRepository) ReadByMechanic(mechanicID uint) ([]models.TruckRepair, error) {
	return r.FindBy("mechanic_id", mechanicID)
}

func (r *TruckRepairRepository) ReadByTruck(truckID uint) ([]models.TruckRepair, error) {
	return r.FindBy("truck_id", truckID)
}
