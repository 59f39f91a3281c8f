package migrations

import (
	"roadfreight/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date and loads the sample dataset on
// first run. Already-applied migrations are skipped, so calling this on
// every startup is safe.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:      "202407-schema",
			Migrate: AutoMigrate,
		},
		{
			ID:      "202407-seed",
			Migrate: seedSampleData,
			Rollback: func(tx *gorm.DB) error {
				// Seed rows are indistinguishable from user data afterwards;
				// rolling them back is not supported.
				return nil
			},
		},
	})
	return m.Migrate()
}

// AutoMigrate creates or updates the nine entity tables, foreign keys
// included. Tests use it to build throwaway schemas without the seed.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Customer{},
		&models.Employee{},
		&models.Truck{},
		&models.Driver{},
		&models.Mechanic{},
		&models.TruckTrip{},
		&models.Shipment{},
		&models.TruckRepair{},
	)
}
