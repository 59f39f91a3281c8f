package models

type Truck struct {
	TruckID         uint    `gorm:"column:truck_id;primaryKey" json:"truck_id"`
	Brand           string  `gorm:"column:brand;type:varchar(255);not null" json:"brand"`
	Load            int     `gorm:"column:load;not null;default:0" json:"load"`
	TruckCapacity   float64 `gorm:"column:truck_capacity;type:decimal(10,2);not null;default:0" json:"truck_capacity"`
	Year            int     `gorm:"column:year;not null" json:"year"`
	NumberOfRepairs int     `gorm:"column:number_of_repairs;not null;default:0" json:"number_of_repairs"`

	CompanyID *uint    `gorm:"column:company_id" json:"company_id,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID;references:CompanyID" json:"company,omitempty"`

	TruckTrips []TruckTrip   `gorm:"foreignKey:TruckID;references:TruckID;constraint:OnDelete:CASCADE" json:"truckTrips"`
	Repairs    []TruckRepair `gorm:"foreignKey:TruckID;references:TruckID;constraint:OnDelete:CASCADE" json:"repairs"`
}
