package handlers

import (
	"net/http"

	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /. It doubles as the uptime probe the frontend pings.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wedding app server is running",
		"health":  utils.GetHealthStatus(),
	})
}
