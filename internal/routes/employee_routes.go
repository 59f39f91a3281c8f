package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func EmployeeRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewEmployeeController(db)

	employee := r.Group("/employees")
	{
		employee.GET("", ctl.List)
		employee.GET("/:id", ctl.Get)
		employee.GET("/first_name/:first_name", ctl.GetByFirstName)
		employee.GET("/last_name/:last_name", ctl.GetByLastName)
		employee.GET("/years_of_service/:years_of_service", ctl.GetByYearsOfService)
		employee.POST("", ctl.Create)
		employee.PUT("/:id", ctl.Update)
		employee.DELETE("/:id", ctl.Delete)
		employee.DELETE("/first_name/:first_name", ctl.DeleteByFirstName)
		employee.DELETE("/last_name/:last_name", ctl.DeleteByLastName)
		employee.DELETE("/years_of_service/:years_of_service", ctl.DeleteByYearsOfService)
	}
}
