package controllers

import (
	"net/http"
	"strconv"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TruckController struct {
	trucks *repository.TruckRepository
}

func NewTruckController(db *gorm.DB) *TruckController {
	return &TruckController{trucks: repository.NewTruckRepository(db)}
}

func (ctl *TruckController) List(c *gin.Context) {
	trucks, err := ctl.trucks.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (ctl *TruckController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	truck, err := ctl.trucks.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if truck == nil {
		notFound(c, "Truck not found")
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (ctl *TruckController) GetByCompany(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("company_id"), 10, 32)
	if err != nil || companyID == 0 {
		badRequest(c, "Invalid company ID")
		return
	}
	trucks, err := ctl.trucks.ReadByCompany(uint(companyID))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(trucks) == 0 {
		notFound(c, "No trucks found for the given company ID")
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (ctl *TruckController) Create(c *gin.Context) {
	var input struct {
		Brand           string  `json:"brand"`
		Load            int     `json:"load"`
		TruckCapacity   float64 `json:"truck_capacity"`
		Year            int     `json:"year"`
		NumberOfRepairs int     `json:"number_of_repairs"`
		CompanyID       *uint   `json:"company_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	truck := models.Truck{
		Brand:           input.Brand,
		Load:            input.Load,
		TruckCapacity:   input.TruckCapacity,
		Year:            input.Year,
		NumberOfRepairs: input.NumberOfRepairs,
		CompanyID:       input.CompanyID,
	}
	created, err := ctl.trucks.Create(&truck)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *TruckController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Brand           *string  `json:"brand"`
		Load            *int     `json:"load"`
		TruckCapacity   *float64 `json:"truck_capacity"`
		Year            *int     `json:"year"`
		NumberOfRepairs *int     `json:"number_of_repairs"`
		CompanyID       *uint    `json:"company_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.Brand != nil {
		fields["brand"] = *input.Brand
	}
	if input.Load != nil {
		fields["load"] = *input.Load
	}
	if input.TruckCapacity != nil {
		fields["truck_capacity"] = *input.TruckCapacity
	}
	if input.Year != nil {
		fields["year"] = *input.Year
	}
	if input.NumberOfRepairs != nil {
		fields["number_of_repairs"] = *input.NumberOfRepairs
	}
	if input.CompanyID != nil {
		fields["company_id"] = *input.CompanyID
	}

	truck, err := ctl.trucks.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if truck == nil {
		notFound(c, "Truck not found")
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (ctl *TruckController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.trucks.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Truck not found")
		return
	}
	c.Status(http.StatusNoContent)
}
