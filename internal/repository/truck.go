package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type TruckRepository struct {
	Base[models.Truck]
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{NewBase[models.Truck](db, "truck", "truck_id", "Company", "Repairs", "TruckTrips")}
}

func (r *TruckRepository) ReadByCompany(companyID uint) ([]models.Truck, error) {
	return r.FindBy("company_id", companyID)
}
