// Package cart holds the per-session shopping cart: the authoritative
// list of cart lines and their derived totals, persisted through a
// pluggable key/value backend.
package cart

import (
	"context"

	"trexstore/models"
)

// Persistence stores cart lines keyed by cart session id.
type Persistence interface {
	Load(ctx context.Context, cartID string) ([]models.CartLine, error)
	Save(ctx context.Context, cartID string, lines []models.CartLine) error
	Delete(ctx context.Context, cartID string) error
}

// Store is the single source of truth for one session's cart. Totals are
// recomputed inside every mutator before it returns, so a caller never
// observes a stale total.
type Store struct {
	cartID string
	lines  []models.CartLine
	p      Persistence
}

// Load reads the session's saved lines and returns a Store over them.
// A missing cart loads as empty.
func Load(ctx context.Context, p Persistence, cartID string) (*Store, error) {
	lines, err := p.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &Store{cartID: cartID, lines: lines, p: p}, nil
}

// AddItem merges the line into an existing entry with the same
// (product, size) key by summing quantities, or appends a new entry.
func (s *Store) AddItem(ctx context.Context, line models.CartLine) error {
	line.LineTotal = line.UnitPrice * float64(line.Quantity)

	merged := false
	for i := range s.lines {
		if s.lines[i].Key() == line.Key() {
			s.lines[i].Quantity += line.Quantity
			s.lines[i].LineTotal = s.lines[i].UnitPrice * float64(s.lines[i].Quantity)
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	return s.p.Save(ctx, s.cartID, s.lines)
}

// RemoveItem deletes the line matching (productID, size). When size is
// empty, every line for the product id is removed, whatever its size.
func (s *Store) RemoveItem(ctx context.Context, productID int, size string) error {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if size != "" {
			if l.ProductID == productID && l.Size == size {
				continue
			}
		} else if l.ProductID == productID {
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	return s.p.Save(ctx, s.cartID, s.lines)
}

// UpdateQuantity overwrites the quantity of the matching line and
// recomputes its total. A quantity of zero or less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID int, quantity int, size string) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID, size)
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID && (size == "" || s.lines[i].Size == size) {
			s.lines[i].Quantity = quantity
			s.lines[i].LineTotal = s.lines[i].UnitPrice * float64(quantity)
			break
		}
	}
	return s.p.Save(ctx, s.cartID, s.lines)
}

// Clear empties the cart. Called after a confirmed order.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	return s.p.Delete(ctx, s.cartID)
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Summary returns the cart with its derived totals.
func (s *Store) Summary() models.CartSummary {
	var total float64
	var count int
	for _, l := range s.lines {
		total += l.LineTotal
		count += l.Quantity
	}
	return models.CartSummary{
		Lines:     s.Lines(),
		CartTotal: total,
		CartCount: count,
	}
}
