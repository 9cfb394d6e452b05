package cart

import (
	"context"
	"sync"

	"trexstore/models"
)

// MemoryPersistence keeps carts in process memory. Used in dev mode and
// in tests, where running without Redis is the point.
type MemoryPersistence struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

// NewMemoryPersistence creates an empty in-memory cart persistence.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{carts: make(map[string][]models.CartLine)}
}

func (mp *MemoryPersistence) Load(_ context.Context, cartID string) ([]models.CartLine, error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	saved := mp.carts[cartID]
	cp := make([]models.CartLine, len(saved))
	copy(cp, saved)
	return cp, nil
}

func (mp *MemoryPersistence) Save(_ context.Context, cartID string, lines []models.CartLine) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	cp := make([]models.CartLine, len(lines))
	copy(cp, lines)
	mp.carts[cartID] = cp
	return nil
}

func (mp *MemoryPersistence) Delete(_ context.Context, cartID string) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	delete(mp.carts, cartID)
	return nil
}
