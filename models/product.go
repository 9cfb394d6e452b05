package models

import "time"

// ProductSize is a clothing size offered for a product
type ProductSize string

const (
	SizeS   ProductSize = "S"
	SizeM   ProductSize = "M"
	SizeL   ProductSize = "L"
	SizeXL  ProductSize = "XL"
	SizeXXL ProductSize = "XXL"
)

// CollectionPolicy controls which community runs a product may be
// collected at.
type CollectionPolicy string

const (
	// CollectAll makes every upcoming run eligible.
	CollectAll CollectionPolicy = "ALL"
	// CollectLatest restricts collection to the furthest-future run.
	CollectLatest CollectionPolicy = "LATEST"
	// CollectSubset restricts collection to a fixed list of run ids.
	CollectSubset CollectionPolicy = "SPECIFIC_SUBSET"
)

// Product represents a purchasable item in the catalog
type Product struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Price           float64       `json:"price"`
	FormattedPrice  string        `json:"formatted_price"`
	Description     string        `json:"description"`
	LongDescription string        `json:"long_description,omitempty"`
	Images          []string      `json:"images"`
	Slug            string        `json:"slug"`
	Sizes           []ProductSize `json:"sizes,omitempty"`
	InStock         bool          `json:"in_stock"`

	// StockQuantity limits units for sale; nil means unlimited.
	StockQuantity *int `json:"stock_quantity,omitempty"`
	// PreOrderDeadline is a cutoff after which the product can no longer
	// be ordered, independent of stock. Nil means no deadline.
	PreOrderDeadline *time.Time `json:"pre_order_deadline,omitempty"`

	CollectionPolicy CollectionPolicy `json:"collection_policy"`
	// CollectionRunIDs is the fixed id list used by CollectSubset.
	CollectionRunIDs []string `json:"collection_run_ids,omitempty"`

	// StripePriceID is the payment gateway's price reference.
	StripePriceID string `json:"stripe_price_id,omitempty"`
}

// HasSize reports whether the given size is offered for this product.
func (p Product) HasSize(size ProductSize) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// RequiresSize reports whether a size must be selected before the product
// can be added to the cart.
func (p Product) RequiresSize() bool {
	return len(p.Sizes) > 0
}
