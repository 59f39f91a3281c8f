package models

// Company owns a fleet of trucks. Deleting a company removes its trucks.
type Company struct {
	CompanyID   uint   `gorm:"column:company_id;primaryKey" json:"company_id"`
	CompanyName string `gorm:"column:company_name;type:varchar(255);not null" json:"company_name"`
	Brand       string `gorm:"column:brand;type:varchar(255);not null" json:"brand"`

	Trucks []Truck `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:CASCADE" json:"trucks"`
}
