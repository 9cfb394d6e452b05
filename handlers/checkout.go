package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trexstore/catalog"
	"trexstore/models"
	"trexstore/orders"
	"trexstore/runs"
)

// GetCollectionDates returns the collection runs every product in the
// cart is eligible for. An empty list is a legitimate answer that blocks
// checkout: the cart holds items with conflicting collection dates.
func (h *Handler) GetCollectionDates(c *gin.Context) {
	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}

	lines := store.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty", "redirect": "/"})
		return
	}

	common, ok := h.commonRunsForCart(c, lines)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection_dates": common})
}

// Checkout validates the contact and collection details, stages a
// PENDING order, and hands the customer off to the hosted payment page.
// Nothing is written to the order store here.
func (h *Handler) Checkout(c *gin.Context) {
	var input models.CheckoutInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, cartID, ok := h.loadCart(c)
	if !ok {
		return
	}
	summary := store.Summary()
	if len(summary.Lines) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty", "redirect": "/"})
		return
	}

	// Re-check availability against the catalog before any network call
	now := time.Now()
	for _, line := range summary.Lines {
		product := catalog.GetByID(line.ProductID)
		if product == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "an item in your cart is no longer sold"})
			return
		}
		if !catalog.IsAvailable(*product, now) {
			c.JSON(http.StatusConflict, gin.H{"error": product.Name + " is no longer available"})
			return
		}
	}

	common, ok := h.commonRunsForCart(c, summary.Lines)
	if !ok {
		return
	}
	if len(common) == 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": "there are no common collection dates available for all items in your cart",
		})
		return
	}

	var selectedRun *models.RunEvent
	for i := range common {
		if common[i].ID == input.CollectDate {
			selectedRun = &common[i]
			break
		}
	}
	if selectedRun == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please select a collection date"})
		return
	}

	order, err := h.Orders.Prepare(input.Name, input.Email, input.Phone,
		summary.CartTotal, selectedRun, summary.Lines)
	if err != nil {
		if err == orders.ErrNoCollectionRun {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please select a collection date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare order"})
		return
	}

	successURL := h.BaseURL + "/order-confirmation?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := h.BaseURL + "/checkout"
	req, err := orders.BuildPaymentRequest(summary.Lines, order, selectedRun, successURL, cancelURL)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Stage the pending order before leaving for the payment page; the
	// confirmation page consumes it after the gateway reports success.
	if err := h.Stager.StagePending(c.Request.Context(), cartID, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage order"})
		return
	}

	url, err := h.Gateway.CreateSession(c.Request.Context(), req)
	if err != nil {
		log.Printf("Failed to create checkout session for order %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment service unavailable, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":          url,
		"order_number": order.OrderNumber,
	})
}

// commonRunsForCart resolves the upcoming runs shared by every product
// in the cart.
func (h *Handler) commonRunsForCart(c *gin.Context, lines []models.CartLine) ([]models.RunEvent, bool) {
	events, err := h.Runs.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load collection dates"})
		return nil, false
	}
	upcoming := runs.Upcoming(events, time.Now())

	seen := make(map[int]bool)
	var prods []models.Product
	for _, line := range lines {
		if seen[line.ProductID] {
			continue
		}
		seen[line.ProductID] = true
		if p := catalog.GetByID(line.ProductID); p != nil {
			prods = append(prods, *p)
		}
	}
	return catalog.CommonCollectionRuns(prods, upcoming), true
}
