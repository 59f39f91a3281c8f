package controllers

import (
	"net/http"
	"strconv"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeController struct {
	employees *repository.EmployeeRepository
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{employees: repository.NewEmployeeRepository(db)}
}

func (ctl *EmployeeController) List(c *gin.Context) {
	employees, err := ctl.employees.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	employee, err := ctl.employees.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if employee == nil {
		notFound(c, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctl *EmployeeController) GetByFirstName(c *gin.Context) {
	employees, err := ctl.employees.ReadByFirstName(c.Param("first_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(employees) == 0 {
		notFound(c, "No employees found with the given first name")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) GetByLastName(c *gin.Context) {
	employees, err := ctl.employees.ReadByLastName(c.Param("last_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(employees) == 0 {
		notFound(c, "No employees found with the given last name")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) GetByYearsOfService(c *gin.Context) {
	years, err := strconv.Atoi(c.Param("years_of_service"))
	if err != nil {
		badRequest(c, "Invalid years of service")
		return
	}
	employees, err := ctl.employees.ReadByYearsOfService(years)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(employees) == 0 {
		notFound(c, "No employees found with the given years of service")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) Create(c *gin.Context) {
	var input struct {
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		YearsOfService int    `json:"years_of_service"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	employee := models.Employee{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		YearsOfService: input.YearsOfService,
	}
	created, err := ctl.employees.Create(&employee)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *EmployeeController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		YearsOfService *int    `json:"years_of_service"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.YearsOfService != nil {
		fields["years_of_service"] = *input.YearsOfService
	}

	employee, err := ctl.employees.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if employee == nil {
		notFound(c, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctl *EmployeeController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.employees.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Employee not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *EmployeeController) DeleteByFirstName(c *gin.Context) {
	affected, err := ctl.employees.DeleteByFirstName(c.Param("first_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, "No employees found with the given first name")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employees deleted"})
}

func (ctl *EmployeeController) DeleteByLastName(c *gin.Context) {
	affected, err := ctl.employees.DeleteByLastName(c.Param("last_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, "No employees found with the given last name")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employees deleted"})
}

func (ctl *EmployeeController) DeleteByYearsOfService(c *gin.Context) {
	years, err := strconv.Atoi(c.Param("years_of_service"))
	if err != nil {
		badRequest(c, "Invalid years of service")
		return
	}
	affected, err := ctl.employees.DeleteByYearsOfService(years)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, "No employees found with the given years of service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employees deleted"})
}
