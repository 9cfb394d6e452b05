// Package handlers exposes the storefront's transactional API over gin.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trexstore/cart"
	"trexstore/email"
	"trexstore/orders"
	"trexstore/payment"
	"trexstore/runs"
)

// Handler holds the dependencies every route needs. Which implementation
// backs each one (Redis or memory, Stripe or mock) is decided at wiring
// time in main.
type Handler struct {
	Carts      cart.Persistence
	Runs       runs.Source
	Gateway    payment.Gateway
	Orders     *orders.Service
	Stager     orders.Stager
	Reconciler *orders.Reconciler
	Mailer     email.Sender
	BaseURL    string
}

// New creates the handler set.
func New(carts cart.Persistence, runSource runs.Source, gateway payment.Gateway,
	svc *orders.Service, stager orders.Stager, reconciler *orders.Reconciler,
	mailer email.Sender, baseURL string) *Handler {
	return &Handler{
		Carts:      carts,
		Runs:       runSource,
		Gateway:    gateway,
		Orders:     svc,
		Stager:     stager,
		Reconciler: reconciler,
		Mailer:     mailer,
		BaseURL:    baseURL,
	}
}

// loadCart resolves the session's cart store. The cart id is set by the
// CartSession middleware.
func (h *Handler) loadCart(c *gin.Context) (*cart.Store, string, bool) {
	cartID := c.GetString("cartID")
	if cartID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart session not found"})
		return nil, "", false
	}
	store, err := cart.Load(c.Request.Context(), h.Carts, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return nil, "", false
	}
	return store, cartID, true
}
