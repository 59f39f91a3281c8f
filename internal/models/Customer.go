package models

type Customer struct {
	CustomerID      uint   `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	CustomerName    string `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	CustomerAddress string `gorm:"column:customer_address;type:varchar(255);not null" json:"customer_address"`
	CustomerPhone1  string `gorm:"column:customer_phone1;type:varchar(15);not null" json:"customer_phone1"`
	CustomerPhone2  string `gorm:"column:customer_phone2;type:varchar(15);not null" json:"customer_phone2"`

	Shipments []Shipment `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE" json:"shipments"`
}
