package controllers

import (
	"net/http"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompanyController struct {
	companies *repository.CompanyRepository
	trucks    *repository.TruckRepository
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{
		companies: repository.NewCompanyRepository(db),
		trucks:    repository.NewTruckRepository(db),
	}
}

// truckPayload is the writable subset of a truck accepted inside a
// company create/update body. Ids and associations are never taken
// from the client here.
type truckPayload struct {
	Brand           string  `json:"brand"`
	Load            int     `json:"load"`
	TruckCapacity   float64 `json:"truck_capacity"`
	Year            int     `json:"year"`
	NumberOfRepairs int     `json:"number_of_repairs"`
}

func (p truckPayload) toModel() models.Truck {
	return models.Truck{
		Brand:           p.Brand,
		Load:            p.Load,
		TruckCapacity:   p.TruckCapacity,
		Year:            p.Year,
		NumberOfRepairs: p.NumberOfRepairs,
	}
}

func (ctl *CompanyController) List(c *gin.Context) {
	companies, err := ctl.companies.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (ctl *CompanyController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	company, err := ctl.companies.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if company == nil {
		notFound(c, "Company not found")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (ctl *CompanyController) GetByName(c *gin.Context) {
	companies, err := ctl.companies.ReadByName(c.Param("company_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(companies) == 0 {
		notFound(c, "No companies found with this name")
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (ctl *CompanyController) GetByBrand(c *gin.Context) {
	companies, err := ctl.companies.ReadByBrand(c.Param("brand"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(companies) == 0 {
		notFound(c, "No companies found with this brand")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Create inserts a company, along with any trucks nested in the body.
// The trucks are created in the same operation and attached to the new
// company.
func (ctl *CompanyController) Create(c *gin.Context) {
	var input struct {
		CompanyName string         `json:"company_name"`
		Brand       string         `json:"brand"`
		Trucks      []truckPayload `json:"trucks"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	company := models.Company{CompanyName: input.CompanyName, Brand: input.Brand}
	for _, t := range input.Trucks {
		company.Trucks = append(company.Trucks, t.toModel())
	}

	created, err := ctl.companies.Create(&company)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *CompanyController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		CompanyName *string        `json:"company_name"`
		Brand       *string        `json:"brand"`
		Trucks      []truckPayload `json:"trucks"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.CompanyName != nil {
		fields["company_name"] = *input.CompanyName
	}
	if input.Brand != nil {
		fields["brand"] = *input.Brand
	}

	company, err := ctl.companies.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if company == nil {
		notFound(c, "Company not found")
		return
	}

	// Nested trucks on update are created fresh and attached to the company.
	if len(input.Trucks) > 0 {
		for _, t := range input.Trucks {
			truck := t.toModel()
			truck.CompanyID = &company.CompanyID
			if _, err := ctl.trucks.Create(&truck); err != nil {
				abortPersistence(c, err)
				return
			}
		}
		if company, err = ctl.companies.ReadByID(id); err != nil {
			abortPersistence(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, company)
}

func (ctl *CompanyController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.companies.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Company not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *CompanyController) DeleteByName(c *gin.Context) {
	affected, err := ctl.companies.DeleteByName(c.Param("company_name"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, "No companies found with this name")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Companies deleted"})
}

func (ctl *CompanyController) DeleteByBrand(c *gin.Context) {
	affected, err := ctl.companies.DeleteByBrand(c.Param("brand"))
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, "No companies found with this brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Companies deleted"})
}
