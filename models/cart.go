package models

import "fmt"

// CartLine represents one product+size entry in the cart
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	LineTotal float64 `json:"line_total"`
}

// Key returns the merge key for the line. Two lines with the same product
// but different sizes are distinct entries.
func (l CartLine) Key() string {
	return LineKey(l.ProductID, l.Size)
}

// LineKey builds the (product, size) merge key used across the cart.
func LineKey(productID int, size string) string {
	if size != "" {
		return fmt.Sprintf("%d-%s", productID, size)
	}
	return fmt.Sprintf("%d", productID)
}

// CartSummary provides the cart contents with derived totals
type CartSummary struct {
	Lines     []CartLine `json:"lines"`
	CartTotal float64    `json:"cart_total"`
	CartCount int        `json:"cart_count"`
}

// CartLineInput holds data for adding items to the cart
type CartLineInput struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size"`
}

// CartUpdateInput holds data for updating a cart line's quantity
type CartUpdateInput struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}
