package controllers

import (
	"net/http"
	"strconv"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DriverController struct {
	drivers   *repository.DriverRepository
	employees *repository.EmployeeRepository
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{
		drivers:   repository.NewDriverRepository(db),
		employees: repository.NewEmployeeRepository(db),
	}
}

func (ctl *DriverController) List(c *gin.Context) {
	drivers, err := ctl.drivers.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// Get also hydrates the shipments of every trip the driver appears on,
// on top of the driver's declared relation set.
func (ctl *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	driver, err := ctl.drivers.ReadByID(id, "TruckTrips1.Shipments", "TruckTrips2.Shipments")
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if driver == nil {
		notFound(c, "Driver not found")
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (ctl *DriverController) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employee_id"), 10, 32)
	if err != nil || employeeID == 0 {
		badRequest(c, "Invalid employee ID")
		return
	}
	drivers, err := ctl.drivers.ReadByEmployee(uint(employeeID))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(drivers) == 0 {
		notFound(c, "No drivers found for the given employee ID")
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// tripSlot serves the truckTrips1/truckTrips2 sub-resources.
func (ctl *DriverController) tripSlot(c *gin.Context, second bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	driver, err := ctl.drivers.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if driver == nil {
		notFound(c, "Driver not found")
		return
	}
	if second {
		c.JSON(http.StatusOK, driver.TruckTrips2)
		return
	}
	c.JSON(http.StatusOK, driver.TruckTrips1)
}

func (ctl *DriverController) GetTruckTrips1(c *gin.Context) { ctl.tripSlot(c, false) }

func (ctl *DriverController) GetTruckTrips2(c *gin.Context) { ctl.tripSlot(c, true) }

// Create requires the referenced employee to exist; an unresolvable
// employee id rejects the request before any write happens.
func (ctl *DriverController) Create(c *gin.Context) {
	var input struct {
		EmployeeID     uint   `json:"employee_id"`
		DriverCategory string `json:"driver_category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	if input.EmployeeID == 0 {
		badRequest(c, "Invalid employee ID")
		return
	}

	employee, err := ctl.employees.ReadByID(input.EmployeeID)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if employee == nil {
		badRequest(c, "Employee not found")
		return
	}

	driver := models.Driver{
		EmployeeID:     employee.EmployeeID,
		Employee:       employee,
		DriverCategory: input.DriverCategory,
	}
	created, err := ctl.drivers.Create(&driver)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		EmployeeID     *uint   `json:"employee_id"`
		DriverCategory *string `json:"driver_category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.EmployeeID != nil {
		employee, err := ctl.employees.ReadByID(*input.EmployeeID)
		if err != nil {
			abortPersistence(c, err)
			return
		}
		if employee == nil {
			badRequest(c, "Employee not found")
			return
		}
		fields["employee_id"] = employee.EmployeeID
	}
	if input.DriverCategory != nil {
		fields["driver_category"] = *input.DriverCategory
	}

	driver, err := ctl.drivers.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if driver == nil {
		notFound(c, "Driver not found")
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (ctl *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.drivers.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Driver not found")
		return
	}
	c.Status(http.StatusNoContent)
}
