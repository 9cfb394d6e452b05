package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"trexstore/models"
)

// Stager holds the short-lived order hand-off between checkout and the
// confirmation page: the PENDING order staged before the customer leaves
// for the hosted payment page, and the confirmed copy kept so revisiting
// the confirmation page stays idempotent.
type Stager interface {
	StagePending(ctx context.Context, cartID string, order models.Order) error
	// TakePending returns and consumes the staged pending order, or nil.
	// Consuming it is what makes confirmation happen at most once.
	TakePending(ctx context.Context, cartID string) (*models.Order, error)
	DiscardPending(ctx context.Context, cartID string) error
	StageConfirmed(ctx context.Context, cartID string, order models.Order) error
	// Confirmed returns the staged confirmed order, or nil.
	Confirmed(ctx context.Context, cartID string) (*models.Order, error)
}

const (
	pendingTTL   = time.Hour
	confirmedTTL = 24 * time.Hour
)

// RedisStager stages orders under pending_order:<cartID> and
// confirmed_order:<cartID> with TTLs.
type RedisStager struct {
	Client *redis.Client
}

// NewRedisStager creates a Redis-backed stager.
func NewRedisStager(client *redis.Client) *RedisStager {
	return &RedisStager{Client: client}
}

func pendingKey(cartID string) string   { return fmt.Sprintf("pending_order:%s", cartID) }
func confirmedKey(cartID string) string { return fmt.Sprintf("confirmed_order:%s", cartID) }

func (s *RedisStager) StagePending(ctx context.Context, cartID string, order models.Order) error {
	return s.set(ctx, pendingKey(cartID), order, pendingTTL)
}

func (s *RedisStager) TakePending(ctx context.Context, cartID string) (*models.Order, error) {
	data, err := s.Client.GetDel(ctx, pendingKey(cartID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var o models.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *RedisStager) DiscardPending(ctx context.Context, cartID string) error {
	return s.Client.Del(ctx, pendingKey(cartID)).Err()
}

func (s *RedisStager) StageConfirmed(ctx context.Context, cartID string, order models.Order) error {
	return s.set(ctx, confirmedKey(cartID), order, confirmedTTL)
}

func (s *RedisStager) Confirmed(ctx context.Context, cartID string) (*models.Order, error) {
	data, err := s.Client.Get(ctx, confirmedKey(cartID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var o models.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *RedisStager) set(ctx context.Context, key string, order models.Order, ttl time.Duration) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, data, ttl).Err()
}

// MemoryStager keeps staged orders in process memory for dev mode and
// tests.
type MemoryStager struct {
	mu        sync.Mutex
	pending   map[string]models.Order
	confirmed map[string]models.Order
}

// NewMemoryStager creates an empty in-memory stager.
func NewMemoryStager() *MemoryStager {
	return &MemoryStager{
		pending:   make(map[string]models.Order),
		confirmed: make(map[string]models.Order),
	}
}

func (s *MemoryStager) StagePending(_ context.Context, cartID string, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[cartID] = order
	return nil
}

func (s *MemoryStager) TakePending(_ context.Context, cartID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.pending[cartID]
	if !ok {
		return nil, nil
	}
	delete(s.pending, cartID)
	return &o, nil
}

func (s *MemoryStager) DiscardPending(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, cartID)
	return nil
}

func (s *MemoryStager) StageConfirmed(_ context.Context, cartID string, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmed[cartID] = order
	return nil
}

func (s *MemoryStager) Confirmed(_ context.Context, cartID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.confirmed[cartID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}
