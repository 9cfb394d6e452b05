package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"trexstore/catalog"
	"trexstore/models"
)

// GetCart retrieves the session's current cart
func (h *Handler) GetCart(c *gin.Context) {
	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": store.Summary()})
}

// AddToCart adds a product to the cart
func (h *Handler) AddToCart(c *gin.Context) {
	var input models.CartLineInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate quantity
	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	product := catalog.GetByID(input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	// Sized products need a size picked before they can go in the cart
	if product.RequiresSize() {
		if input.Size == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please select a size"})
			return
		}
		if !product.HasSize(models.ProductSize(input.Size)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size not offered for this product"})
			return
		}
	}

	if !catalog.IsAvailable(*product, time.Now()) {
		c.JSON(http.StatusConflict, gin.H{"error": "product is no longer available"})
		return
	}

	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	err := store.AddItem(c.Request.Context(), models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     image,
		Quantity:  input.Quantity,
		Size:      input.Size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": store.Summary()})
}

// UpdateCartLine overwrites a cart line's quantity; zero removes it
func (h *Handler) UpdateCartLine(c *gin.Context) {
	var input models.CartUpdateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), input.ProductID, input.Quantity, input.Size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": store.Summary()})
}

// RemoveFromCart removes the line matching product_id (and size, when
// given) from the cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	size := c.Query("size")

	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), productID, size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": store.Summary()})
}

// ClearCart removes all lines from the session's cart
func (h *Handler) ClearCart(c *gin.Context) {
	store, _, ok := h.loadCart(c)
	if !ok {
		return
	}
	if err := store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared successfully"})
}
