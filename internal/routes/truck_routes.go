package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TruckRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewTruckController(db)

	truck := r.Group("/trucks")
	{
		truck.GET("", ctl.List)
		truck.GET("/:id", ctl.Get)
		truck.GET("/company/:company_id", ctl.GetByCompany)
		truck.POST("", ctl.Create)
		truck.PUT("/:id", ctl.Update)
		truck.DELETE("/:id", ctl.Delete)
	}
}
