package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CustomerRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewCustomerController(db)

	customer := r.Group("/customers")
	{
		customer.GET("", ctl.List)
		customer.GET("/:id", ctl.Get)
		customer.GET("/name/:customer_name", ctl.GetByName)
		customer.GET("/address/:customer_address", ctl.GetByAddress)
		customer.GET("/phone1/:customer_phone1", ctl.GetByPhone1)
		customer.GET("/phone2/:customer_phone2", ctl.GetByPhone2)
		customer.POST("", ctl.Create)
		customer.PUT("/:id", ctl.Update)
		customer.DELETE("/:id", ctl.Delete)
		customer.DELETE("/name/:customer_name", ctl.DeleteByName)
		customer.DELETE("/address/:customer_address", ctl.DeleteByAddress)
		customer.DELETE("/phone1/:customer_phone1", ctl.DeleteByPhone1)
		customer.DELETE("/phone2/:customer_phone2", ctl.DeleteByPhone2)
	}
}
