package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the engine with every entity group mounted.
// Middleware must be passed in here rather than attached afterwards,
// because gin snapshots the handler chain when a route is registered.
// Tests pass none and drive the routes directly.
func SetupRouter(db *gorm.DB, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Road Freight Transportation company - Working")
	})

	CompanyRoutes(r, db)
	CustomerRoutes(r, db)
	DriverRoutes(r, db)
	EmployeeRoutes(r, db)
	MechanicRoutes(r, db)
	ShipmentRoutes(r, db)
	TruckRoutes(r, db)
	TruckRepairRoutes(r, db)
	TruckTripRoutes(r, db)

	return r
}
