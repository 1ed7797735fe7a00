package handlers

import (
	"net/http"

	"seabreeze/utils"

	"github.com/gin-gonic/gin"
)

// HealthzHandler returns the latest health snapshot of mongo and redis.
func HealthzHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
