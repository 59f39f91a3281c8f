package controllers

import (
	"net/http"
	"strconv"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MechanicController struct {
	mechanics *repository.MechanicRepository
	employees *repository.EmployeeRepository
}

func NewMechanicController(db *gorm.DB) *MechanicController {
	return &MechanicController{
		mechanics: repository.NewMechanicRepository(db),
		employees: repository.NewEmployeeRepository(db),
	}
}

func (ctl *MechanicController) List(c *gin.Context) {
	mechanics, err := ctl.mechanics.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, mechanics)
}

func (ctl *MechanicController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	mechanic, err := ctl.mechanics.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if mechanic == nil {
		notFound(c, "Mechanic not found")
		return
	}
	c.JSON(http.StatusOK, mechanic)
}

func (ctl *MechanicController) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employee_id"), 10, 32)
	if err != nil || employeeID == 0 {
		badRequest(c, "Invalid employee ID")
		return
	}
	mechanics, err := ctl.mechanics.ReadByEmployee(uint(employeeID))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(mechanics) == 0 {
		notFound(c, "No mechanics found for the given employee ID")
		return
	}
	c.JSON(http.StatusOK, mechanics)
}

// Create requires the referenced employee to exist, same contract as
// driver creation.
func (ctl *MechanicController) Create(c *gin.Context) {
	var input struct {
		EmployeeID       uint   `json:"employee_id"`
		SpecializedBrand string `json:"specialized_brand"`
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

	mechanic := models.Mechanic{
		EmployeeID:       employee.EmployeeID,
		Employee:         employee,
		SpecializedBrand: input.SpecializedBrand,
	}
	created, err := ctl.mechanics.Create(&mechanic)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *MechanicController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		EmployeeID       *uint   `json:"employee_id"`
		SpecializedBrand *string `json:"specialized_brand"`
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
	if input.SpecializedBrand != nil {
		fields["specialized_brand"] = *input.SpecializedBrand
	}

	mechanic, err := ctl.mechanics.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if mechanic == nil {
		notFound(c, "Mechanic not found")
		return
	}
	c.JSON(http.StatusOK, mechanic)
}

func (ctl *MechanicController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.mechanics.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Mechanic not found")
		return
	}
	c.Status(http.StatusNoContent)
}
