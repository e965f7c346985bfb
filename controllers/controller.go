// Package controllers contains one handler per (resource, HTTP verb) pair.
//
// Every handler follows the same contract: validate the body (POST/PUT only),
// acquire a connection from the injected provider, run a single parameterized
// SQL statement, and map the outcome to an HTTP status. Connections are
// released on every exit path.
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id route parameter. The URL space only contains unsigned
// integer ids, so anything else is a plain 404 rather than a resource error.
// strconv.Atoi alone is too loose here: it accepts "-1" and "+1".
func pathID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return 0, false
	}
	return id, true
}
