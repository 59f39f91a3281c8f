package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TruckTripRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewTruckTripController(db)

	trip := r.Group("/truck-trips")
	{
		trip.GET("", ctl.List)
		trip.GET("/:id", ctl.Get)
		trip.POST("", ctl.Create)
		trip.PUT("/:id", ctl.Update)
		trip.DELETE("/:id", ctl.Delete)
	}
}
