package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trexstore/catalog"
	"trexstore/models"
)

type productView struct {
	models.Product
	Available bool `json:"available"`
}

// GetAllProducts returns the catalog with availability computed for now
func (h *Handler) GetAllProducts(c *gin.Context) {
	now := time.Now()
	products := catalog.All()

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, Available: catalog.IsAvailable(p, now)})
	}
	c.JSON(http.StatusOK, gin.H{"products": views})
}

// GetProduct returns one product by slug. A missing product is a normal
// storefront state and renders as a 404 payload, not a failure.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")
	product := catalog.GetBySlug(slug)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product": productView{Product: *product, Available: catalog.IsAvailable(*product, time.Now())},
	})
}
