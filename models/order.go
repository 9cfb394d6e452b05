package models

import "time"

// PaymentStatus tracks an order's payment lifecycle
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Order represents a customer order
type Order struct {
	ID                 int           `json:"id,omitempty"`
	OrderNumber        string        `json:"order_number"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	TransactionValue   float64       `json:"transaction_value"`
	CollectionDate     string        `json:"collection_date"`
	CollectionLocation string        `json:"collection_location"`
	// Items is the JSON-serialized snapshot of the cart lines at the
	// time the order was placed.
	Items           string        `json:"items,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentProofRef string        `json:"payment_proof_ref,omitempty"`
	CreatedAt       time.Time     `json:"created_at,omitempty"`
}

// CheckoutInput holds the contact and collection details the customer
// submits on the checkout form
type CheckoutInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CollectDate string `json:"collect_date" binding:"required"`
}
