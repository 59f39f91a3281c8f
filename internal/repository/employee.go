package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	Base[models.Employee]
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{NewBase[models.Employee](db, "employee", "employee_id", "Drivers", "Mechanics")}
}

func (r *EmployeeRepository) ReadByFirstName(name string) ([]models.Employee, error) {
	return r.FindBy("first_name", name)
}

func (r *EmployeeRepository) ReadByLastName(name string) ([]models.Employee, error) {
	return r.FindBy("last_name", name)
}

func (r *EmployeeRepository) ReadByYearsOfService(years int) ([]models.Employee, error) {
	return r.FindBy("years_of_service", years)
}

func (r *EmployeeRepository) DeleteByFirstName(name string) (int64, error) {
	return r.DeleteBy("first_name", name)
}

func (r *EmployeeRepository) DeleteByLastName(name string) (int64, error) {
	return r.DeleteBy("last_name", name)
}

func (r *EmployeeRepository) DeleteByYearsOfService(years int) (int64, error) {
	return r.DeleteBy("years_of_service", years)
}
