// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to the marketplace API"

// Health handles /healthz and prevents caching of the answer.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Root handles GET / with a JSON string.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeMessage)
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, "Not found")
}
