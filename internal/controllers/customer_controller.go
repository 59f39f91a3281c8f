package controllers

import (
	"net/http"

	"roadfreight/internal/models"
	"roadfreight/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	customers *repository.CustomerRepository
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{customers: repository.NewCustomerRepository(db)}
}

func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.customers.ReadAll()
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, err := ctl.customers.ReadByID(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if customer == nil {
		notFound(c, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctl *CustomerController) getBy(c *gin.Context, find func(string) ([]models.Customer, error), value, noneMsg string) {
	customers, err := find(value)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if len(customers) == 0 {
		notFound(c, noneMsg)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ctl *CustomerController) GetByName(c *gin.Context) {
	ctl.getBy(c, ctl.customers.ReadByName, c.Param("customer_name"), "No customers found with this name")
}

func (ctl *CustomerController) GetByAddress(c *gin.Context) {
	ctl.getBy(c, ctl.customers.ReadByAddress, c.Param("customer_address"), "No customers found with this address")
}

func (ctl *CustomerController) GetByPhone1(c *gin.Context) {
	ctl.getBy(c, ctl.customers.ReadByPhone1, c.Param("customer_phone1"), "No customers found with this phone1")
}

func (ctl *CustomerController) GetByPhone2(c *gin.Context) {
	ctl.getBy(c, ctl.customers.ReadByPhone2, c.Param("customer_phone2"), "No customers found with this phone2")
}

func (ctl *CustomerController) Create(c *gin.Context) {
	var input struct {
		CustomerName    string `json:"customer_name"`
		CustomerAddress string `json:"customer_address"`
		CustomerPhone1  string `json:"customer_phone1"`
		CustomerPhone2  string `json:"customer_phone2"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	customer := models.Customer{
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerPhone1:  input.CustomerPhone1,
		CustomerPhone2:  input.CustomerPhone2,
	}
	created, err := ctl.customers.Create(&customer)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input struct {
		CustomerName    *string `json:"customer_name"`
		CustomerAddress *string `json:"customer_address"`
		CustomerPhone1  *string `json:"customer_phone1"`
		CustomerPhone2  *string `json:"customer_phone2"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.CustomerName != nil {
		fields["customer_name"] = *input.CustomerName
	}
	if input.CustomerAddress != nil {
		fields["customer_address"] = *input.CustomerAddress
	}
	if input.CustomerPhone1 != nil {
		fields["customer_phone1"] = *input.CustomerPhone1
	}
	if input.CustomerPhone2 != nil {
		fields["customer_phone2"] = *input.CustomerPhone2
	}

	customer, err := ctl.customers.Update(id, fields)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if customer == nil {
		notFound(c, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := ctl.customers.Delete(id)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if !deleted {
		notFound(c, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *CustomerController) deleteBy(c *gin.Context, del func(string) (int64, error), value, noneMsg string) {
	affected, err := del(value)
	if err != nil {
		abortPersistence(c, err)
		return
	}
	if affected == 0 {
		notFound(c, noneMsg)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customers deleted"})
}

func (ctl *CustomerController) DeleteByName(c *gin.Context) {
	ctl.deleteBy(c, ctl.customers.DeleteByName, c.Param("customer_name"), "No customers found with this name")
}

func (ctl *CustomerController) DeleteByAddress(c *gin.Context) {
	ctl.deleteBy(c, ctl.customers.DeleteByAddress, c.Param("customer_address"), "No customers found with this address")
}

func (ctl *CustomerController) DeleteByPhone1(c *gin.Context) {
	ctl.deleteBy(c, ctl.customers.DeleteByPhone1, c.Param("customer_phone1"), "No customers found with this phone1")
}

func (ctl *CustomerController) DeleteByPhone2(c *gin.Context) {
	ctl.deleteBy(c, ctl.customers.DeleteByPhone2, c.Param("customer_phone2"), "No customers found with this phone2")
}
