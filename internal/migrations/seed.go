package migrations

import (
	"time"

	"roadfreight/internal/models"

	"gorm.io/gorm"
)

func ts(value string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", value)
	return t
}

// seedSampleData loads the development dataset: five companies with one
// truck each, five employees doubling as drivers and mechanics, five
// customers, and a set of trips, shipments and repairs across them.
func seedSampleData(tx *gorm.DB) error {
	companies := []models.Company{
		{CompanyName: "FastTrack Logistics", Brand: "Ford"},
		{CompanyName: "Cargo Express Solutions", Brand: "Chevrolet"},
		{CompanyName: "Swift Transport Co.", Brand: "Toyota"},
		{CompanyName: "Elite Freight Services", Brand: "Volvo"},
		{CompanyName: "Global Cargo Network", Brand: "Mercedes"},
	}
	if err := tx.Create(&companies).Error; err != nil {
		return err
	}

	trucks := []models.Truck{
		{Brand: "Ford", Load: 5500, TruckCapacity: 8000.50, Year: 2020, NumberOfRepairs: 3, CompanyID: &companies[0].CompanyID},
		{Brand: "Chevrolet", Load: 2300, TruckCapacity: 6500.75, Year: 2018, NumberOfRepairs: 2, CompanyID: &companies[1].CompanyID},
		{Brand: "Toyota", Load: 4567, TruckCapacity: 6000.25, Year: 2019, NumberOfRepairs: 4, CompanyID: &companies[2].CompanyID},
		{Brand: "Volvo", Load: 6000, TruckCapacity: 7500.25, Year: 2017, NumberOfRepairs: 1, CompanyID: &companies[3].CompanyID},
		{Brand: "Mercedes", Load: 4000, TruckCapacity: 7000.00, Year: 2019, NumberOfRepairs: 0, CompanyID: &companies[4].CompanyID},
	}
	if err := tx.Create(&trucks).Error; err != nil {
		return err
	}

	employees := []models.Employee{
		{FirstName: "Shivani", LastName: "Varu", YearsOfService: 5},
		{FirstName: "Alice", LastName: "Johnson", YearsOfService: 8},
		{FirstName: "Anaswara", LastName: "Nair", YearsOfService: 3},
		{FirstName: "Nisha", LastName: "Brown", YearsOfService: 10},
		{FirstName: "Binita", LastName: "Khua", YearsOfService: 7},
	}
	if err := tx.Create(&employees).Error; err != nil {
		return err
	}

	drivers := []models.Driver{
		{EmployeeID: employees[0].EmployeeID, DriverCategory: "Regular Driver"},
		{EmployeeID: employees[1].EmployeeID, DriverCategory: "Occasional Driver"},
		{EmployeeID: employees[2].EmployeeID, DriverCategory: "Regular Driver"},
		{EmployeeID: employees[3].EmployeeID, DriverCategory: "Occasional Driver"},
		{EmployeeID: employees[4].EmployeeID, DriverCategory: "Regular Driver"},
	}
	if err := tx.Create(&drivers).Error; err != nil {
		return err
	}

	mechanics := []models.Mechanic{
		{EmployeeID: employees[0].EmployeeID, SpecializedBrand: "Ford"},
		{EmployeeID: employees[1].EmployeeID, SpecializedBrand: "Chevrolet"},
		{EmployeeID: employees[2].EmployeeID, SpecializedBrand: "Toyota"},
		{EmployeeID: employees[3].EmployeeID, SpecializedBrand: "Volvo"},
		{EmployeeID: employees[4].EmployeeID, SpecializedBrand: "Mercedes"},
	}
	if err := tx.Create(&mechanics).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{CustomerName: "John Doe", CustomerAddress: "123 Elm Street", CustomerPhone1: "555-123-3456", CustomerPhone2: "555-567-9876"},
		{CustomerName: "Jane Smith", CustomerAddress: "456 Oak Avenue", CustomerPhone1: "555-876-8765", CustomerPhone2: "555-432-1234"},
		{CustomerName: "Alice Johnson", CustomerAddress: "789 Pine Road", CustomerPhone1: "555-246-9876", CustomerPhone2: "555-135-9000"},
		{CustomerName: "David Taylor", CustomerAddress: "101 Maple Street", CustomerPhone1: "555-654-1254", CustomerPhone2: "555-789-4456"},
		{CustomerName: "Emily Brown", CustomerAddress: "202 Birch Avenue", CustomerPhone1: "555-987-0003", CustomerPhone2: "555-321-2213"},
	}
	if err := tx.Create(&customers).Error; err != nil {
		return err
	}

	trips := []models.TruckTrip{
		{Route: "Coastal Highway Route", TruckID: &trucks[0].TruckID, Driver1ID: &drivers[0].DriverID, Driver2ID: &drivers[1].DriverID},
		{Route: "Interstate 95 Route", TruckID: &trucks[1].TruckID, Driver1ID: &drivers[2].DriverID, Driver2ID: &drivers[3].DriverID},
		{Route: "Mountain Pass Route", TruckID: &trucks[2].TruckID, Driver1ID: &drivers[4].DriverID, Driver2ID: &drivers[1].DriverID},
		{Route: "Midwest Express Route", TruckID: &trucks[3].TruckID, Driver1ID: &drivers[0].DriverID, Driver2ID: &drivers[2].DriverID},
		{Route: "East Coast Route", TruckID: &trucks[4].TruckID, Driver1ID: &drivers[3].DriverID, Driver2ID: &drivers[1].DriverID},
	}
	if err := tx.Create(&trips).Error; err != nil {
		return err
	}

	shipments := []models.Shipment{
		{Weight: 1500.50, Value: 2500.00, Origin: "Toronto", Destination: "Kitchener", CustomerID: &customers[0].CustomerID, TruckTripID: &trips[0].TruckTripID},
		{Weight: 2000.75, Value: 3500.00, Origin: "Waterloo", Destination: "Cambridge", CustomerID: &customers[1].CustomerID, TruckTripID: &trips[0].TruckTripID},
		{Weight: 1800.25, Value: 3000.00, Origin: "Cambridge", Destination: "Brampton", CustomerID: &customers[2].CustomerID, TruckTripID: &trips[1].TruckTripID},
		{Weight: 2200.00, Value: 4000.00, Origin: "Hamilton", Destination: "London", CustomerID: &customers[3].CustomerID, TruckTripID: &trips[1].TruckTripID},
		{Weight: 1800.00, Value: 3200.00, Origin: "Kitchener", Destination: "Toronto", CustomerID: &customers[4].CustomerID, TruckTripID: &trips[2].TruckTripID},
	}
	if err := tx.Create(&shipments).Error; err != nil {
		return err
	}

	repairs := []models.TruckRepair{
		{TruckID: &trucks[0].TruckID, MechanicID: &mechanics[0].MechanicID, StartDate: ts("2024-07-20 08:00:00"), EndDate: ts("2024-07-23 16:00:00"), EstimatedDays: 3},
		{TruckID: &trucks[1].TruckID, MechanicID: &mechanics[1].MechanicID, StartDate: ts("2024-07-21 09:00:00"), EndDate: ts("2024-07-22 17:00:00"), EstimatedDays: 2},
		{TruckID: &trucks[2].TruckID, MechanicID: &mechanics[2].MechanicID, StartDate: ts("2024-07-19 10:00:00"), EndDate: ts("2024-07-21 15:00:00"), EstimatedDays: 2},
		{TruckID: &trucks[3].TruckID, MechanicID: &mechanics[3].MechanicID, StartDate: ts("2024-07-18 07:30:00"), EndDate: ts("2024-07-20 14:00:00"), EstimatedDays: 2},
		{TruckID: &trucks[4].TruckID, MechanicID: &mechanics[4].MechanicID, StartDate: ts("2024-07-17 11:00:00"), EndDate: ts("2024-07-21 18:00:00"), EstimatedDays: 5},
	}
	return tx.Create(&repairs).Error
}
