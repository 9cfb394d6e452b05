package orders

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trexstore/models"
	"trexstore/storage"
)

func eastCoastRun() *models.RunEvent {
	return &models.RunEvent{
		ID:       "ecp",
		Date:     time.Date(2025, 5, 25, 8, 0, 0, 0, time.UTC),
		Location: "East Coast Park",
	}
}

func janeCartLines() []models.CartLine {
	return []models.CartLine{{
		ProductID: 1,
		Name:      "ORIGIN T-SHIRT",
		UnitPrice: 29.99,
		Quantity:  2,
		Size:      "M",
		LineTotal: 59.98,
	}}
}

func TestPrepareBuildsPendingOrder(t *testing.T) {
	svc := NewService(NewMemoryStore(), storage.NewMemoryUploader())

	order, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567",
		59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.InDelta(t, 59.98, order.TransactionValue, 1e-9)
	assert.Equal(t, "2025-05-25", order.CollectionDate)
	assert.Equal(t, "East Coast Park", order.CollectionLocation)
	assert.Regexp(t, regexp.MustCompile(`^TX-\d{1,6}-\d{4}$`), order.OrderNumber)

	var items []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(order.Items), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].Size)
}

func TestPrepareRequiresCollectionRun(t *testing.T) {
	svc := NewService(NewMemoryStore(), storage.NewMemoryUploader())

	_, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, nil, janeCartLines())
	assert.ErrorIs(t, err, ErrNoCollectionRun)
}

func TestPreparePersistsNothing(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, storage.NewMemoryUploader())

	_, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)
	assert.Empty(t, store.All())
}

func TestBuildPaymentRequest(t *testing.T) {
	svc := NewService(NewMemoryStore(), storage.NewMemoryUploader())
	order, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)

	req, err := BuildPaymentRequest(janeCartLines(), order, eastCoastRun(),
		"https://shop.test/order-confirmation?session_id={CHECKOUT_SESSION_ID}",
		"https://shop.test/checkout")
	require.NoError(t, err)

	require.Len(t, req.LineItems, 1)
	assert.Equal(t, 2, req.LineItems[0].Quantity)
	assert.NotEmpty(t, req.LineItems[0].PriceID)
	assert.Equal(t, "Size: M", req.LineItems[0].Description)

	assert.Equal(t, "jane@example.com", req.CustomerEmail)
	assert.Equal(t, "Jane Tan", req.Metadata["customerName"])
	assert.Equal(t, "2025-05-25", req.Metadata["collectionDate"])
	assert.Equal(t, "East Coast Park", req.Metadata["collectionLocation"])
	assert.Equal(t, "May 25, 2025", req.Metadata["collectFormattedDate"])
	assert.Equal(t, order.Items, req.Metadata["items"])
}

func TestBuildPaymentRequestRejectsUnconfiguredProduct(t *testing.T) {
	lines := []models.CartLine{{ProductID: 404, Name: "GHOST ITEM", Quantity: 1}}

	_, err := BuildPaymentRequest(lines, models.Order{}, eastCoastRun(), "https://s", "https://c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment price reference")
}

func TestConfirmPersistsCompletedOrder(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, storage.NewMemoryUploader())

	order, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, confirmed.PaymentStatus)
	assert.Equal(t, order.OrderNumber, confirmed.OrderNumber)

	saved, err := store.GetByNumber(context.Background(), order.OrderNumber)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, models.PaymentCompleted, saved.PaymentStatus)
}

func TestConfirmWithProofUploadsFirst(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, storage.NewMemoryUploader())
	order, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmWithProof(context.Background(), order, strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, confirmed.PaymentProofRef)
	assert.Equal(t, models.PaymentCompleted, confirmed.PaymentStatus)
}

func TestConfirmWithProofFailedUploadBlocksCompletion(t *testing.T) {
	store := NewMemoryStore()
	uploader := storage.NewMemoryUploader()
	uploader.Fail = true
	svc := NewService(store, uploader)
	order, err := svc.Prepare("Jane Tan", "jane@example.com", "91234567", 59.98, eastCoastRun(), janeCartLines())
	require.NoError(t, err)

	_, err = svc.ConfirmWithProof(context.Background(), order, strings.NewReader("image-bytes"))
	require.Error(t, err)
	assert.Empty(t, store.All())
}
