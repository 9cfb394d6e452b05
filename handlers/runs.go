package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trexstore/runs"
)

// GetRuns returns the full community-run schedule
func (h *Handler) GetRuns(c *gin.Context) {
	events, err := h.Runs.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": events})
}

// GetUpcomingRuns returns only runs that have not happened yet
func (h *Handler) GetUpcomingRuns(c *gin.Context) {
	events, err := h.Runs.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs.Upcoming(events, time.Now())})
}
