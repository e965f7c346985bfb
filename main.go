package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rrhoades10/ecommerce-api/config"
	"github.com/rrhoades10/ecommerce-api/controllers"
	"github.com/rrhoades10/ecommerce-api/models"
	"github.com/rrhoades10/ecommerce-api/schemas"
)

func main() {
	// Basic logging
	log.Println("Starting ecommerce API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := config.NewPostgresProvider(cfg)

	// Create the tables at boot; after this, every request opens and
	// releases its own connection.
	db := provider.Connect()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	provider.Release(db)
	log.Println("Database migration completed successfully")

	router := setupRouter(provider)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every route to its handler. Controllers get their
// dependencies here so tests can pass a substitute provider.
func setupRouter(provider config.Provider) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", home)

	customers := controllers.NewCustomerController(provider, schemas.NewCustomerSchema())
	router.GET("/customers", customers.List)
	router.POST("/customers", customers.Create)
	router.PUT("/customers/:id", customers.Update)
	router.DELETE("/customers/:id", customers.Delete)

	orders := controllers.NewOrderController(provider, schemas.NewOrderSchema())
	router.GET("/orders", orders.List)
	router.POST("/orders", orders.Create)
	router.PUT("/orders/:id", orders.Update)
	router.DELETE("/orders/:id", orders.Delete)

	return router
}

// home handles the greeting route
func home(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to our super cool ecommerce api! yippee")
}
