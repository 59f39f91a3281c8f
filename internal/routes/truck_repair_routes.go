package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TruckRepairRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewTruckRepairController(db)

	repair := r.Group("/truck-repairs")
	{
		repair.GET("", ctl.List)
		repair.GET("/:id", ctl.Get)
		repair.POST("", ctl.Create)
		repair.PUT("/:id", ctl.Update)
		repair.DELETE("/:id", ctl.Delete)
	}
}
