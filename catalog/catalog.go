// Package catalog exposes the product list and the purchasability and
// collection-date rules. All functions take the current run list as a
// parameter; nothing here holds mutable state.
package catalog

import (
	"sort"
	"time"

	"trexstore/models"
)

// products would normally come from a database or CMS; the catalog is
// small enough to define at build time.
var products = []models.Product{
	{
		ID:               1,
		Name:             "ORIGIN T-SHIRT",
		Price:            29.99,
		FormattedPrice:   "S$29.99",
		Description:      "Lightweight cotton T-shirt in acid-washed black, with our ORIGIN logo printed on the back.",
		LongDescription:  "Our signature ORIGIN T-shirt is made from lightweight cotton for maximum comfort for casual wear. The acid-washed black fabric gives it a vintage look, while the ORIGIN logo printed on the back provides a clean, minimalist design, a call back to our origins 1 year ago.",
		Images:           []string{"/DSC09579.jpg", "/DSC09583.jpg", "/IMG_3397.jpg", "/IMG_3400.JPG", "/FRONT_LOGO.png"},
		Slug:             "tshirt",
		Sizes:            []models.ProductSize{models.SizeS, models.SizeM, models.SizeL, models.SizeXL, models.SizeXXL},
		InStock:          true,
		CollectionPolicy: models.CollectAll,
		StripePriceID:    "price_1R6SfLRsScX4UO9PZVpizuTQ",
	},
	{
		ID:               2,
		Name:             "TREX STICKER PACK",
		Price:            6,
		FormattedPrice:   "S$6",
		Description:      "Set of 3 waterproof vinyl stickers featuring the TREX Athletics Club logos and designs.",
		LongDescription:  "Add some TREX logos to your water bottle, laptop, or other gear with our set of 3 high-quality vinyl stickers. These stickers are waterproof, and made to last through your toughest adventures.",
		Images:           []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
		Slug:             "stickers",
		InStock:          true,
		CollectionPolicy: models.CollectAll,
		StripePriceID:    "price_1R6TOfRsScX4UO9PPtjyVh7D",
	},
}

// All returns the full product list.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// GetBySlug returns the product with the given slug, or nil if none
// exists. A missing product is a normal storefront state, not an error.
func GetBySlug(slug string) *models.Product {
	for i := range products {
		if products[i].Slug == slug {
			p := products[i]
			return &p
		}
	}
	return nil
}

// GetByID returns the product with the given id, or nil if none exists.
func GetByID(id int) *models.Product {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p
		}
	}
	return nil
}

// IsAvailable reports whether the product can be purchased at the given
// instant. A zero stock quantity means sold out, an absent one means
// unlimited; a passed pre-order deadline makes the product unavailable
// regardless of stock.
func IsAvailable(p models.Product, now time.Time) bool {
	if !p.InStock {
		return false
	}
	if p.StockQuantity != nil && *p.StockQuantity <= 0 {
		return false
	}
	if p.PreOrderDeadline != nil && now.After(*p.PreOrderDeadline) {
		return false
	}
	return true
}

// AvailableCollectionRuns computes the run ids the product may be
// collected at, according to its collection policy, given the currently
// upcoming runs. "Latest" is relative to now, so callers must pass a
// fresh run list whenever it changes.
func AvailableCollectionRuns(p models.Product, upcoming []models.RunEvent) []string {
	switch p.CollectionPolicy {
	case models.CollectLatest:
		latest := furthestRun(upcoming)
		if latest == nil {
			return nil
		}
		return []string{latest.ID}
	case models.CollectSubset:
		ids := make([]string, 0, len(p.CollectionRunIDs))
		for _, id := range p.CollectionRunIDs {
			for _, run := range upcoming {
				if run.ID == id {
					ids = append(ids, id)
					break
				}
			}
		}
		return ids
	default: // models.CollectAll
		ids := make([]string, 0, len(upcoming))
		for _, run := range upcoming {
			ids = append(ids, run.ID)
		}
		return ids
	}
}

// CommonCollectionRuns intersects the eligible collection runs across all
// given products. An empty result is a legitimate terminal state: the cart
// holds products with no shared collection date, and checkout must be
// blocked with a clear message.
func CommonCollectionRuns(prods []models.Product, upcoming []models.RunEvent) []models.RunEvent {
	if len(prods) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, p := range prods {
		for _, id := range AvailableCollectionRuns(p, upcoming) {
			counts[id]++
		}
	}

	var common []models.RunEvent
	for _, run := range upcoming {
		if counts[run.ID] == len(prods) {
			common = append(common, run)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Date.Before(common[j].Date) })
	return common
}

func furthestRun(runs []models.RunEvent) *models.RunEvent {
	var latest *models.RunEvent
	for i := range runs {
		if latest == nil || runs[i].Date.After(latest.Date) {
			latest = &runs[i]
		}
	}
	return latest
}
