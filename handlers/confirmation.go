package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trexstore/orders"
)

// OrderConfirmation reconciles the return from the hosted payment page.
// A rejected reconciliation sends the customer home with a notice; a
// false CONFIRMED would be the worse failure mode.
func (h *Handler) OrderConfirmation(c *gin.Context) {
	store, cartID, ok := h.loadCart(c)
	if !ok {
		return
	}
	sessionID := c.Query("session_id")

	result, err := h.Reconciler.Reconcile(c.Request.Context(), cartID, sessionID, store)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"state":    string(orders.StateRejected),
			"redirect": "/",
			"error":    "we could not verify your payment, please contact support",
		})
		return
	}
	if result.State == orders.StateRejected {
		c.JSON(http.StatusSeeOther, gin.H{
			"state":    string(orders.StateRejected),
			"redirect": "/",
			"error":    "we could not verify your payment, please contact support",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": string(orders.StateConfirmed),
		"order": result.Order,
	})
}
