package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ShipmentRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewShipmentController(db)

	shipment := r.Group("/shipments")
	{
		shipment.GET("", ctl.List)
		shipment.GET("/:id", ctl.Get)
		shipment.POST("", ctl.Create)
		shipment.PUT("/:id", ctl.Update)
		shipment.DELETE("/:id", ctl.Delete)
	}
}
