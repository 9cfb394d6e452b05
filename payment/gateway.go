// Package payment abstracts the hosted payment gateway behind two
// operations: create a checkout session and validate a returned session.
// The production and test implementations both satisfy Gateway; which one
// runs is decided by configuration, never inside business logic.
package payment

import "context"

// LineItem is one entry of a checkout session in the gateway's format:
// an external price reference plus a quantity.
type LineItem struct {
	PriceID  string
	Quantity int
	// Description carries the size detail for sized products.
	Description string
}

// SessionRequest describes the checkout session to create.
type SessionRequest struct {
	LineItems     []LineItem
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

// Gateway is the payment gateway capability.
type Gateway interface {
	// CreateSession creates a hosted checkout session and returns the
	// URL to redirect the customer to.
	CreateSession(ctx context.Context, req SessionRequest) (url string, err error)
	// ValidateSession reports whether the given session id exists and
	// matches at the gateway.
	ValidateSession(ctx context.Context, sessionID string) (bool, error)
}
