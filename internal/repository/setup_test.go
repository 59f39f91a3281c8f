package repository

import (
	"path/filepath"
	"testing"

	"roadfreight/internal/migrations"
	"roadfreight/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with foreign keys
// enforced, so the cascade rules behave like they do on Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createCompany(t *testing.T, db *gorm.DB, name, brand string) *models.Company {
	t.Helper()
	company, err := NewCompanyRepository(db).Create(&models.Company{CompanyName: name, Brand: brand})
	require.NoError(t, err)
	require.NotZero(t, company.CompanyID)
	return company
}

func createTruck(t *testing.T, db *gorm.DB, companyID *uint) *models.Truck {
	t.Helper()
	truck, err := NewTruckRepository(db).Create(&models.Truck{
		Brand:         "Ford",
		Load:          0,
		TruckCapacity: 1000.00,
		Year:          2020,
		CompanyID:     companyID,
	})
	require.NoError(t, err)
	return truck
}

func createEmployee(t *testing.T, db *gorm.DB, first, last string, years int) *models.Employee {
	t.Helper()
	employee, err := NewEmployeeRepository(db).Create(&models.Employee{
		FirstName:      first,
		LastName:       last,
		YearsOfService: years,
	})
	require.NoError(t, err)
	return employee
}

func createDriver(t *testing.T, db *gorm.DB, employeeID uint, category string) *models.Driver {
	t.Helper()
	driver, err := NewDriverRepository(db).Create(&models.Driver{
		EmployeeID:     employeeID,
		DriverCategory: category,
	})
	require.NoError(t, err)
	return driver
}

func createMechanic(t *testing.T, db *gorm.DB, employeeID uint, brand string) *models.Mechanic {
	t.Helper()
	mechanic, err := NewMechanicRepository(db).Create(&models.Mechanic{
		EmployeeID:       employeeID,
		SpecializedBrand: brand,
	})
	require.NoError(t, err)
	return mechanic
}

func createCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer, err := NewCustomerRepository(db).Create(&models.Customer{
		CustomerName:    name,
		CustomerAddress: "123 Elm Street",
		CustomerPhone1:  "555-123-3456",
		CustomerPhone2:  "555-567-9876",
	})
	require.NoError(t, err)
	return customer
}

func createShipment(t *testing.T, db *gorm.DB, customerID, tripID *uint, weight, value float64) *models.Shipment {
	t.Helper()
	shipment, err := NewShipmentRepository(db).Create(&models.Shipment{
		Weight:      weight,
		Value:       value,
		Origin:      "Toronto",
		Destination: "Kitchener",
		CustomerID:  customerID,
		TruckTripID: tripID,
	})
	require.NoError(t, err)
	return shipment
}

func createRepair(t *testing.T, db *gorm.DB, truckID, mechanicID *uint, days int) *models.TruckRepair {
	t.Helper()
	repair, err := NewTruckRepairRepository(db).Create(&models.TruckRepair{
		EstimatedDays: days,
		TruckID:       truckID,
		MechanicID:    mechanicID,
	})
	require.NoError(t, err)
	return repair
}

func createTrip(t *testing.T, db *gorm.DB, truckID, driver1ID, driver2ID *uint) *models.TruckTrip {
	t.Helper()
	trip, err := NewTruckTripRepository(db).Create(&models.TruckTrip{
		Route:     "R1",
		TruckID:   truckID,
		Driver1ID: driver1ID,
		Driver2ID: driver2ID,
	})
	require.NoError(t, err)
	return trip
}
