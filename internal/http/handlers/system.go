package handlers

import (
	"net/http"

	"yogabooking/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the MySQL pool when present; the memory driver has
// nothing to check.
func DBCheck(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "driver": "memory"})
		return
	}
	if err := config.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "driver": "mysql"})
}
