package handlers

import (
	"net/http"
	"time"

	"casexpert/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last probe results for the store and sessions.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"service":  "CaseXpert API",
		"time":     time.Now().UTC().Format(time.RFC3339Nano),
		"store":    status.Checks["store"],
		"sessions": status.Checks["sessions"],
	})
}
