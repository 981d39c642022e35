// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its database dependency.
type HealthController struct {
	checkDB func() bool
}

// NewHealthController creates a health controller. checkDB may be nil when
// the service runs without a database; the endpoint then reports it as
// disconnected.
func NewHealthController(checkDB func() bool) *HealthController {
	return &HealthController{checkDB: checkDB}
}

// Check handles GET /health requests. The endpoint always answers 200 with
// status "ok"; database reachability is reported as a separate field so
// monitoring can alert on it without failing load-balancer probes.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  h.databaseStatus(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthController) databaseStatus() string {
	if h.checkDB == nil || !h.checkDB() {
		return "disconnected"
	}
	return "connected"
}
