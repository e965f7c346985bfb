package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rrhoades10/ecommerce-api/config"
	"github.com/rrhoades10/ecommerce-api/models"
	"github.com/rrhoades10/ecommerce-api/schemas"
)

// CustomerController serves the /customers routes
type CustomerController struct {
	provider config.Provider
	schema   *schemas.CustomerSchema
}

// NewCustomerController builds a customer controller with its dependencies
// injected so tests can substitute fakes
func NewCustomerController(provider config.Provider, schema *schemas.CustomerSchema) *CustomerController {
	return &CustomerController{provider: provider, schema: schema}
}

// List handles GET /customers - returns all customers
func (ctl *CustomerController) List(c *gin.Context) {
	db := ctl.provider.Connect()
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}
	defer ctl.provider.Release(db)

	var customers []models.Customer
	if err := db.Raw(`SELECT * FROM "Customer"`).Scan(&customers).Error; err != nil {
		log.Printf("Failed to fetch customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	c.JSON(http.StatusOK, customers)
}

// Create handles POST /customers - inserts a new customer
func (ctl *CustomerController) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, schemas.FieldErrors{"_schema": "Invalid input type."})
		return
	}

	// No connection is opened until the body has validated.
	payload, fieldErrors := ctl.schema.Load(body)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	db := ctl.provider.Connect()
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}
	defer ctl.provider.Release(db)

	if err := db.Exec(
		`INSERT INTO "Customer" (name, email, phone) VALUES (?, ?, ?)`,
		payload.Name, payload.Email, payload.Phone,
	).Error; err != nil {
		log.Printf("Failed to insert customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "New customer added succesfully"})
}

// Update handles PUT /customers/:id - updates a customer by id.
// Only email is persisted, and no existence check is performed: an update
// against a missing id still reports success. Both quirks are kept for
// wire compatibility.
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, schemas.FieldErrors{"_schema": "Invalid input type."})
		return
	}

	payload, fieldErrors := ctl.schema.Load(body)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	db := ctl.provider.Connect()
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}
	defer ctl.provider.Release(db)

	if err := db.Exec(
		`UPDATE "Customer" SET email = ? WHERE customer_id = ?`,
		payload.Email, id,
	).Error; err != nil {
		log.Printf("Failed to update customer %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer details were succesfully updated!"})
}

// Delete handles DELETE /customers/:id - removes a customer after an
// existence check
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	db := ctl.provider.Connect()
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}
	defer ctl.provider.Release(db)

	var customer models.Customer
	result := db.Raw(`SELECT * FROM "Customer" WHERE customer_id = ?`, id).Scan(&customer)
	if result.Error != nil {
		log.Printf("Failed to look up customer %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
		return
	}

	if err := db.Exec(`DELETE FROM "Customer" WHERE customer_id = ?`, id).Error; err != nil {
		log.Printf("Failed to delete customer %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer Removed succesfully"})
}
