package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trexstore/config"
)

// CheckConnection reports service health, including the database when one
// is configured
func (h *Handler) CheckConnection(c *gin.Context) {
	if config.DB != nil {
		if err := config.DB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
