package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	MarkEventProcessed(ctx context.Context, eventKey string, ttl time.Duration) error
	IsEventProcessed(ctx context.Context, eventKey string) (bool, error)
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client turns every
// call into a no-op so the service keeps working on the database alone.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// MarkEventProcessed remembers a consumed order event for ttl
func (r *redis) MarkEventProcessed(ctx context.Context, eventKey string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, processedKey(eventKey), 1, ttl).Err()
}

// IsEventProcessed reports whether an order event was marked processed and has not expired
func (r *redis) IsEventProcessed(ctx context.Context, eventKey string) (bool, error) {
	return r.exists(ctx, processedKey(eventKey))
}

// IsTokenRevoked checks the revocation list the identity service writes on logout
func (r *redis) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return r.exists(ctx, revokedTokenKey(jti))
}

func (r *redis) exists(ctx context.Context, key string) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func processedKey(eventKey string) string {
	return fmt.Sprintf("stock:order-event:%s", eventKey)
}

func revokedTokenKey(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}
