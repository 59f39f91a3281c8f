package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	Base[models.Company]
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{NewBase[models.Company](db, "company", "company_id", "Trucks")}
}

func (r *CompanyRepository) ReadByName(name string) ([]models.Company, error) {
	return r.FindBy("company_name", name)
}

func (r *CompanyRepository) ReadByBrand(brand string) ([]models.Company, error) {
	return r.FindBy("brand", brand)
}

func (r *CompanyRepository) DeleteByName(name string) (int64, error) {
	return r.DeleteBy("company_name", name)
}

func (r *CompanyRepository) DeleteByBrand(brand string) (int64, error) {
	return r.DeleteBy("brand", brand)
}
