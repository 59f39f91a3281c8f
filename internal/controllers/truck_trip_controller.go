package controllers

import (
	"net/http"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TruckTripController struct {
	trips   *repository.TruckTripRepository
	trucks  *repository.TruckRepository
	drivers *repository.DriverRepository
}

func NewTruckTripController(db *gorm.DB) *TruckTripController {
	return &TruckTripController{
		trips:   repository.NewTruckTripRepository(db),
		trucks:  repository.NewTruckRepository(db),
		drivers: repository.NewDriverRepository(db),
	}
}

func (ctl *TruckTripController) List(c *gin.Context) {
	trips, err := ctl.trips.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (ctl *TruckTripController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	trip, err := ctl.trips.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if trip == nil {
		notFound(c, "TruckTrip not found")
		return
	}
	c.JSON(http.StatusOK, trip)
}

type truckTripInput struct {
	Route     *string `json:"route"`
	TruckID   *uint   `json:"truck_id"`
	Driver1ID *uint   `json:"driver1_id"`
	Driver2ID *uint   `json:"driver2_id"`
}

// resolveTruck returns the truck's id if it exists, nil otherwise.
// Unresolvable references on a truck trip are skipped, not rejected;
// the trip is written without them. This mirrors the long-standing
// behavior of the public API.
func (ctl *TruckTripController) resolveTruck(id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	truck, err := ctl.trucks.ReadByID(*id)
	if err != nil || truck == nil {
		return nil, err
	}
	return &truck.TruckID, nil
}

func (ctl *TruckTripController) resolveDriver(id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	driver, err := ctl.drivers.ReadByID(*id)
	if err != nil || driver == nil {
		return nil, err
	}
	return &driver.DriverID, nil
}

func (ctl *TruckTripController) Create(c *gin.Context) {
	var input truckTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	trip := models.TruckTrip{}
	if input.Route != nil {
		trip.Route = *input.Route
	}

	var err error
	if trip.TruckID, err = ctl.resolveTruck(input.TruckID); err != nil {
		abortPersistence(c, err)
		return
	}
	if trip.Driver1ID, err = ctl.resolveDriver(input.Driver1ID); err != nil {
		abortPersistence(c, err)
		return
	}
	if trip.Driver2ID, err = ctl.resolveDriver(input.Driver2ID); err != nil {
		abortPersistence(c, err)
		return
	}

	created, err := ctl.trips.Create(&trip)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	// Re-read so the response carries the resolved relations.
	hydrated, err := ctl.trips.ReadByID(created.TruckTripID)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, hydrated)
}

func (ctl *TruckTripController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input truckTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.Route != nil {
		fields["route"] = *input.Route
	}
	if truckID, err := ctl.resolveTruck(input.TruckID); err != nil {
		abortPersistence(c, err)
		return
	} else if truckID != nil {
		fields["truck_id"] = *truckID
	}
	if driverID, err := ctl.resolveDriver(input.Driver1ID); err != nil {
		abortPersistence(c, err)
		return
	} else if driverID != nil {
		fields["driver1_id"] = *driverID
	}
	if driverID, err := ctl.resolveDriver(input.Driver2ID); err != nil {
		abortPersistence(c, err)
		return
	} else if driverID != nil {
		fields["driver2_id"] = *driverID
	}

	trip, err := ctl.trips.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if trip == nil {
		notFound(c, "TruckTrip not found")
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (ctl *TruckTripController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.trips.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "TruckTrip not found")
		return
	}
	c.Status(http.StatusNoContent)
}
