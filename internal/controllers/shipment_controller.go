package controllers

import (
	"net/http"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShipmentController struct {
	shipments *repository.ShipmentRepository
}

func NewShipmentController(db *gorm.DB) *ShipmentController {
	return &ShipmentController{shipments: repository.NewShipmentRepository(db)}
}

func (ctl *ShipmentController) List(c *gin.Context) {
	shipments, err := ctl.shipments.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (ctl *ShipmentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	shipment, err := ctl.shipments.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if shipment == nil {
		notFound(c, "Shipment not found")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// Create takes foreign keys as plain ids; the database rejects
// references to rows that don't exist.
func (ctl *ShipmentController) Create(c *gin.Context) {
	var input struct {
		Weight      float64 `json:"weight"`
		Value       float64 `json:"value"`
		Origin      string  `json:"origin"`
		Destination string  `json:"destination"`
		CustomerID  *uint   `json:"customer_id"`
		TruckTripID *uint   `json:"truck_trip_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	shipment := models.Shipment{
		Weight:      input.Weight,
		Value:       input.Value,
		Origin:      input.Origin,
		Destination: input.Destination,
		CustomerID:  input.CustomerID,
		TruckTripID: input.TruckTripID,
	}
	created, err := ctl.shipments.Create(&shipment)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *ShipmentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Weight      *float64 `json:"weight"`
		Value       *float64 `json:"value"`
		Origin      *string  `json:"origin"`
		Destination *string  `json:"destination"`
		CustomerID  *uint    `json:"customer_id"`
		TruckTripID *uint    `json:"truck_trip_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.Weight != nil {
		fields["weight"] = *input.Weight
	}
	if input.Value != nil {
		fields["value"] = *input.Value
	}
	if input.Origin != nil {
		fields["origin"] = *input.Origin
	}
	if input.Destination != nil {
		fields["destination"] = *input.Destination
	}
	if input.CustomerID != nil {
		fields["customer_id"] = *input.CustomerID
	}
	if input.TruckTripID != nil {
		fields["truck_trip_id"] = *input.TruckTripID
	}

	shipment, err := ctl.shipments.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if shipment == nil {
		notFound(c, "Shipment not found")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (ctl *ShipmentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.shipments.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Shipment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
