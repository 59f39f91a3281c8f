package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type MechanicRepository struct {
	Base[models.Mechanic]
}

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{NewBase[models.Mechanic](db, "mechanic", "mechanic_id", "Employee", "TruckRepairs")}
}

func (r *MechanicRepository) ReadByEmployee(employeeID uint) ([]models.Mechanic, error) {
	return r.FindBy("employee_id", employeeID)
}
