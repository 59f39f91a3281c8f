package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DriverRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewDriverController(db)

	driver := r.Group("/drivers")
	{
		driver.GET("", ctl.List)
		driver.GET("/:id", ctl.Get)
		driver.GET("/:id/truckTrips1", ctl.GetTruckTrips1)
		driver.GET("/:id/truckTrips2", ctl.GetTruckTrips2)
		driver.GET("/employee/:employee_id", ctl.GetByEmployee)
		driver.POST("", ctl.Create)
		driver.PUT("/:id", ctl.Update)
		driver.DELETE("/:id", ctl.Delete)
	}
}
