// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-admin/internal/config"
)

// cartTTL is how long an abandoned cart survives. Matches the session
// cookie lifetime.
const cartTTL = 24 * time.Hour

// Store abstracts cart persistence so handlers can be tested without Redis.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// Service keeps session carts in Redis as JSON blobs with a sliding TTL.
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service.
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// Get loads the cart for a session, returning a fresh empty cart when none
// exists yet.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return New(sessionID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	return &c, nil
}

// Save persists the cart and refreshes its TTL.
func (s *Service) Save(ctx context.Context, c *Cart) error {
	if c.SessionID == "" {
		return fmt.Errorf("cart has no session ID")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.redisClient.Set(ctx, cartKey(c.SessionID), data, cartTTL).Err()
}

// Clear deletes the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
