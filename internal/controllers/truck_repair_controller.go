package controllers

import (
	"net/http"
	"time"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TruckRepairController struct {
	repairs *repository.TruckRepairRepository
}

func NewTruckRepairController(db *gorm.DB) *TruckRepairController {
	return &TruckRepairController{repairs: repository.NewTruckRepairRepository(db)}
}

func (ctl *TruckRepairController) List(c *gin.Context) {
	repairs, err := ctl.repairs.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, repairs)
}

func (ctl *TruckRepairController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	repair, err := ctl.repairs.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if repair == nil {
		notFound(c, "Truck repair not found")
		return
	}
	c.JSON(http.StatusOK, repair)
}

// Create leaves start/end dates to the database default (current time)
// when the body omits them.
func (ctl *TruckRepairController) Create(c *gin.Context) {
	var input struct {
		StartDate     *time.Time `json:"start_date"`
		EndDate       *time.Time `json:"end_date"`
		EstimatedDays int        `json:"estimated_days"`
		TruckID       *uint      `json:"truck_id"`
		MechanicID    *uint      `json:"mechanic_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	repair := models.TruckRepair{
		EstimatedDays: input.EstimatedDays,
		TruckID:       input.TruckID,
		MechanicID:    input.MechanicID,
	}
	if input.StartDate != nil {
		repair.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		repair.EndDate = *input.EndDate
	}

	created, err := ctl.repairs.Create(&repair)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *TruckRepairController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		StartDate     *time.Time `json:"start_date"`
		EndDate       *time.Time `json:"end_date"`
		EstimatedDays *int       `json:"estimated_days"`
		TruckID       *uint      `json:"truck_id"`
		MechanicID    *uint      `json:"mechanic_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.StartDate != nil {
		fields["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		fields["end_date"] = *input.EndDate
	}
	if input.EstimatedDays != nil {
		fields["estimated_days"] = *input.EstimatedDays
	}
	if input.TruckID != nil {
		fields["truck_id"] = *input.TruckID
	}
	if input.MechanicID != nil {
		fields["mechanic_id"] = *input.MechanicID
	}

	repair, err := ctl.repairs.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if repair == nil {
		notFound(c, "Truck repair not found")
		return
	}
	c.JSON(http.StatusOK, repair)
}

func (ctl *TruckRepairController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.repairs.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Truck repair not found")
		return
	}
	c.Status(http.StatusNoContent)
}
