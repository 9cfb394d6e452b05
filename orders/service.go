// Package orders assembles checkout submissions into orders, builds the
// payment-gateway request, and finalizes orders once payment is confirmed.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"trexstore/catalog"
	"trexstore/models"
	"trexstore/payment"
	"trexstore/storage"
	"trexstore/utils"
)

// ErrNoCollectionRun is returned when checkout is submitted without a
// collection date.
var ErrNoCollectionRun = errors.New("no collection run selected")

// Service turns validated checkout input into orders.
type Service struct {
	Store    Store
	Uploader storage.Uploader
}

// NewService creates the order service.
func NewService(store Store, uploader storage.Uploader) *Service {
	return &Service{Store: store, Uploader: uploader}
}

// Prepare validates the collection selection, mints an order number, and
// returns a PENDING order. Nothing is persisted here: persistence happens
// only after payment succeeds, so abandoned checkouts leave no records.
func (s *Service) Prepare(name, email, phone string, transactionValue float64, run *models.RunEvent, lines []models.CartLine) (models.Order, error) {
	if run == nil {
		return models.Order{}, ErrNoCollectionRun
	}

	items, err := json.Marshal(lines)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		OrderNumber:        utils.GenerateOrderNumber(),
		Name:               name,
		Email:              email,
		Phone:              phone,
		TransactionValue:   transactionValue,
		CollectionDate:     run.Date.Format("2006-01-02"),
		CollectionLocation: run.Location,
		Items:              string(items),
		PaymentStatus:      models.PaymentPending,
	}, nil
}

// BuildPaymentRequest maps the cart lines to the gateway's line-item
// format and attaches the order details as metadata for reconciliation.
// A cart line whose product has no payment price reference is a blocking
// error, never silently dropped.
func BuildPaymentRequest(lines []models.CartLine, order models.Order, run *models.RunEvent, successURL, cancelURL string) (payment.SessionRequest, error) {
	req := payment.SessionRequest{
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
		CustomerEmail: order.Email,
	}

	for _, line := range lines {
		product := catalog.GetByID(line.ProductID)
		if product == nil || product.StripePriceID == "" {
			return payment.SessionRequest{}, fmt.Errorf("product %d not found or missing payment price reference", line.ProductID)
		}
		item := payment.LineItem{
			PriceID:  product.StripePriceID,
			Quantity: line.Quantity,
		}
		if line.Size != "" {
			item.Description = fmt.Sprintf("Size: %s", line.Size)
		}
		req.LineItems = append(req.LineItems, item)
	}

	req.Metadata = map[string]string{
		"customerName":         order.Name,
		"customerEmail":        order.Email,
		"customerPhone":        order.Phone,
		"collectionDate":       order.CollectionDate,
		"collectionLocation":   order.CollectionLocation,
		"collectFormattedDate": models.FormatRunDate(run.Date),
		"items":                order.Items,
	}
	return req, nil
}

// Confirm transitions the order to COMPLETED and persists it.
func (s *Service) Confirm(ctx context.Context, order models.Order) (models.Order, error) {
	order.PaymentStatus = models.PaymentCompleted
	if err := s.Store.Insert(ctx, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ConfirmWithProof stores the proof-of-payment image first and confirms
// the order only once the upload produced a durable reference. A failed
// upload leaves the order PENDING.
func (s *Service) ConfirmWithProof(ctx context.Context, order models.Order, proof io.Reader) (models.Order, error) {
	ref, err := s.Uploader.Upload(ctx, proof)
	if err != nil {
		return models.Order{}, fmt.Errorf("storing proof of payment: %w", err)
	}
	order.PaymentProofRef = ref
	return s.Confirm(ctx, order)
}
