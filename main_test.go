package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestHome is a unit test for the home handler function
func TestHome(t *testing.T) {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create a test context and response recorder
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Call the handler
	home(c)

	// Assert the status code and greeting
	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")
	assert.Equal(t, "Welcome to our super cool ecommerce api! yippee", w.Body.String())
}

// TestHomeResponseFormat tests that the greeting is plain text, not JSON
func TestHomeResponseFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	home(c)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
