package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rrhoades10/ecommerce-api/config"
	"github.com/rrhoades10/ecommerce-api/models"
	"github.com/rrhoades10/ecommerce-api/schemas"
)

// OrderController serves the /orders routes
type OrderController struct {
	provider config.Provider
	schema   *schemas.OrderSchema
}

// NewOrderController builds an order controller with its dependencies
// injected so tests can substitute fakes
func NewOrderController(provider config.Provider, schema *schemas.OrderSchema) *OrderController {
	return &OrderController{provider: provider, schema: schema}
}

// List handles GET /orders - returns all orders
func (ctl *OrderController) List(c *gin.Context) {
	db := ctl.provider.Connect()
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
		return
	}
	defer ctl.provider.Release(db)

	var orders []models.Order
	if err := db.Raw("SELECT * FROM orders").Scan(&orders).Error; err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// Create handles POST /orders - inserts a new order
func (ctl *OrderController) Create(c *gin.Context) {
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
		"INSERT INTO orders (date, customer_id) VALUES (?, ?)",
		payload.Date, *payload.CustomerID,
	).Error; err != nil {
		log.Printf("Failed to insert order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order was succesfully added"})
}

// Update handles PUT /orders/:id - replaces an order's date and customer.
// No existence check is performed: an update against a missing id still
// reports success. Kept for wire compatibility.
func (ctl *OrderController) Update(c *gin.Context) {
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
		"UPDATE orders SET date = ?, customer_id = ? WHERE order_id = ?",
		payload.Date, *payload.CustomerID, id,
	).Error; err != nil {
		log.Printf("Failed to update order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated succesfully"})
}

// Delete handles DELETE /orders/:id - removes an order after an existence
// check
func (ctl *OrderController) Delete(c *gin.Context) {
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

	var order models.Order
	result := db.Raw("SELECT * FROM orders WHERE order_id = ?", id).Scan(&order)
	if result.Error != nil {
		log.Printf("Failed to look up order %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order does not exist"})
		return
	}

	if err := db.Exec("DELETE FROM orders WHERE order_id = ?", id).Error; err != nil {
		log.Printf("Failed to delete order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Succesfully delete order_id %d", id)})
}
