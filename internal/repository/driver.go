package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type DriverRepository struct {
	Base[models.Driver]
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{NewBase[models.Driver](db, "driver", "driver_id", "Employee", "TruckTrips1", "TruckTrips2")}
}

func (r *DriverRepository) ReadByEmployee(employeeID uint) ([]models.Driver, error) {
	return r.FindBy("employee_id", employeeID)
}
