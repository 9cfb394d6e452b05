// Package email sends the order-confirmation message. Sending is
// fire-and-forget: a failure is logged and never blocks confirmation.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"trexstore/models"
)

// Sender sends an order confirmation to the customer.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, order models.Order) error
}

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSender delivers through the EmailJS REST API.
type EmailJSSender struct {
	ServiceID  string
	TemplateID string
	UserID     string
	HTTPClient *http.Client
}

// NewEmailJSSender creates a sender with the given EmailJS credentials.
func NewEmailJSSender(serviceID, templateID, userID string) *EmailJSSender {
	return &EmailJSSender{
		ServiceID:  serviceID,
		TemplateID: templateID,
		UserID:     userID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EmailJSSender) SendOrderConfirmation(ctx context.Context, order models.Order) error {
	subject := fmt.Sprintf("T-Rex Athletics Order Confirmation #%s", order.OrderNumber)
	body := composeBody(order)

	payload := map[string]interface{}{
		"service_id":  s.ServiceID,
		"template_id": s.TemplateID,
		"user_id":     s.UserID,
		"template_params": map[string]string{
			"to_email":     order.Email,
			"to_name":      order.Name,
			"subject":      subject,
			"message":      body,
			"order_number": order.OrderNumber,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, emailJSEndpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("emailjs returned status %d", resp.StatusCode)
	}
	return nil
}

// composeBody renders the plaintext confirmation with the purchased items
// and the collection details.
func composeBody(order models.Order) string {
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(order.Items), &lines); err != nil {
		log.Printf("Could not parse order items for email: %v", err)
	}

	var itemsList strings.Builder
	for _, l := range lines {
		sizeInfo := ""
		if l.Size != "" {
			sizeInfo = fmt.Sprintf(" (Size: %s)", l.Size)
		}
		fmt.Fprintf(&itemsList, "%s%s × %d - S$%.2f\n", l.Name, sizeInfo, l.Quantity, l.LineTotal)
	}

	return fmt.Sprintf(`Hello %s,

Thank you for your order with T-Rex Athletics!

ORDER DETAILS:
Order Number: %s
Date: %s

Items Purchased:
%s
Total: S$%.2f

Collection Details:
Date: %s
Location: %s

Please bring a copy of this confirmation when you collect your items.

If you have any questions, please contact us at info@trexathletics.club.

Thank you for supporting T-Rex Athletics!
`, order.Name, order.OrderNumber, time.Now().Format("January 2, 2006"),
		itemsList.String(), order.TransactionValue,
		order.CollectionDate, order.CollectionLocation)
}

// NoopSender discards emails. Used in dev mode.
type NoopSender struct{}

func (NoopSender) SendOrderConfirmation(_ context.Context, order models.Order) error {
	log.Printf("DEV_MODE: skipping confirmation email for order %s", order.OrderNumber)
	return nil
}
