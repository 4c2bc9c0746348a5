// Package api wires the HTTP surface: route registration, request binding
// and the shared response envelope. Handlers stay thin; all domain logic
// lives in the formula, engine and service packages.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// respond writes the standard success envelope with a named payload.
func respond(c *gin.Context, key string, payload any) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		key:         payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondBadRequest writes the standard error envelope with a 400 status.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":    "error",
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// paramFloat parses a numeric path parameter, writing a 400 response on
// failure. The second return reports whether the parse succeeded.
func paramFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("invalid numeric parameter %q: %s", name, raw))
		return 0, false
	}
	return v, true
}

// RegisterHealthRoutes registers the liveness endpoint.
func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
