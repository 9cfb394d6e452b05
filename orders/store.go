package orders

import (
	"context"
	"database/sql"
	"sync"

	"trexstore/models"
)

// Store persists confirmed orders. Orders are inserted exactly once, at
// the moment payment is confirmed; there is no update-in-place.
type Store interface {
	Insert(ctx context.Context, order models.Order) error
	// GetByNumber returns the order, or nil when it does not exist.
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
}

// MySQLStore writes orders to the orders table.
type MySQLStore struct {
	DB *sql.DB
}

// NewMySQLStore creates a store over the given connection pool.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

func (s *MySQLStore) Insert(ctx context.Context, order models.Order) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO orders (
			order_number, name, email, phone, transaction_value,
			collection_date, collection_location, items, payment_status, payment_proof_ref
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderNumber, order.Name, order.Email, order.Phone, order.TransactionValue,
		order.CollectionDate, order.CollectionLocation, order.Items,
		string(order.PaymentStatus), order.PaymentProofRef)
	return err
}

func (s *MySQLStore) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	var status string
	var proofRef sql.NullString
	err := s.DB.QueryRowContext(ctx, `
		SELECT order_number, name, email, phone, transaction_value,
		       collection_date, collection_location, items, payment_status, payment_proof_ref
		FROM orders WHERE order_number = ?`, orderNumber).Scan(
		&o.OrderNumber, &o.Name, &o.Email, &o.Phone, &o.TransactionValue,
		&o.CollectionDate, &o.CollectionLocation, &o.Items, &status, &proofRef)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = models.PaymentStatus(status)
	if proofRef.Valid {
		o.PaymentProofRef = proofRef.String
	}
	return &o, nil
}

// MemoryStore keeps orders in process memory for dev mode and tests.
type MemoryStore struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryStore) GetByNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderNumber == orderNumber {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// All returns every stored order. Test helper.
func (s *MemoryStore) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
