package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MechanicRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewMechanicController(db)

	mechanic := r.Group("/mechanics")
	{
		mechanic.GET("", ctl.List)
		mechanic.GET("/:id", ctl.Get)
		mechanic.GET("/employee/:employee_id", ctl.GetByEmployee)
		mechanic.POST("", ctl.Create)
		mechanic.PUT("/:id", ctl.Update)
		mechanic.DELETE("/:id", ctl.Delete)
	}
}
