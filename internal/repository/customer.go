package repository

import (
	"roadfreight/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	Base[models.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{NewBase[models.Customer](db, "customer", "customer_id", "Shipments")}
}

func (r *CustomerRepository) ReadByName(name string) ([]models.Customer, error) {
	return r.FindBy("customer_name", name)
}

func (r *CustomerRepository) ReadByAddress(address string) ([]models.Customer, error) {
	return r.FindBy("customer_address", address)
}

func (r *CustomerRepository) ReadByPhone1(phone string) ([]models.Customer, error) {
	return r.FindBy("customer_phone1", phone)
}

func (r *CustomerRepository) ReadByPhone2(phone string) ([]models.Customer, error) {
	return r.FindBy("customer_phone2", phone)
}

func (r *CustomerRepository) DeleteByName(name string) (int64, error) {
	return r.DeleteBy("customer_name", name)
}

func (r *CustomerRepository) DeleteByAddress(address string) (int64, error) {
	return r.DeleteBy("customer_address", address)
}

func (r *CustomerRepository) DeleteByPhone1(phone string) (int64, error) {
	return r.DeleteBy("customer_phone1", phone)
}

func (r *CustomerRepository) DeleteByPhone2(phone string) (int64, error) {
	return r.DeleteBy("customer_phone2", phone)
}
