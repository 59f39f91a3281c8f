package routes

import (
	"roadfreight/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CompanyRoutes(r *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewCompanyController(db)

	company := r.Group("/companies")
	{
		company.GET("", ctl.List)
		company.GET("/:id", ctl.Get)
		company.GET("/name/:company_name", ctl.GetByName)
		company.GET("/brand/:brand", ctl.GetByBrand)
		company.POST("", ctl.Create)
		company.PUT("/:id", ctl.Update)
		company.DELETE("/:id", ctl.Delete)
		company.DELETE("/name/:company_name", ctl.DeleteByName)
		company.DELETE("/brand/:brand", ctl.DeleteByBrand)
	}
}
