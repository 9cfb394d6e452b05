package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"trexstore/models"
)

// cartTTL keeps abandoned carts around long enough to survive reloads
// and return visits without hoarding them forever.
const cartTTL = 30 * 24 * time.Hour

// RedisPersistence stores cart lines as JSON under cart:<id>.
type RedisPersistence struct {
	Client *redis.Client
}

// NewRedisPersistence creates a Redis-backed cart persistence.
func NewRedisPersistence(client *redis.Client) *RedisPersistence {
	return &RedisPersistence{Client: client}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// Load reads the saved lines for the cart; a missing key is an empty cart.
func (rp *RedisPersistence) Load(ctx context.Context, cartID string) ([]models.CartLine, error) {
	data, err := rp.Client.Get(ctx, cartKey(cartID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save writes the lines back and refreshes the TTL.
func (rp *RedisPersistence) Save(ctx context.Context, cartID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return rp.Client.Set(ctx, cartKey(cartID), data, cartTTL).Err()
}

// Delete removes the cart entirely.
func (rp *RedisPersistence) Delete(ctx context.Context, cartID string) error {
	return rp.Client.Del(ctx, cartKey(cartID)).Err()
}
