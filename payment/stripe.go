package payment

import (
	"context"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway drives Stripe's hosted checkout.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the secret key and
// returns the gateway.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateSession creates a Stripe checkout session in payment mode and
// returns its hosted URL.
func (g *StripeGateway) CreateSession(_ context.Context, req SessionRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "paynow", "grabpay"}),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(int64(item.Quantity)),
			AdjustableQuantity: &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(true),
				Minimum: stripe.Int64(1),
				Maximum: stripe.Int64(10),
			},
		})
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		return "", err
	}
	return s.URL, nil
}

// ValidateSession retrieves the session from Stripe and checks that it
// exists under the expected id. A lookup failure is reported as invalid,
// not as an error, because the caller treats both the same way.
func (g *StripeGateway) ValidateSession(_ context.Context, sessionID string) (bool, error) {
	s, err := session.Get(sessionID, nil)
	if err != nil {
		log.Printf("Stripe session lookup failed for %s: %v", sessionID, err)
		return false, nil
	}
	return s != nil && s.ID == sessionID, nil
}
