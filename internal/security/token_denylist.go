package security

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked token IDs until their natural expiry.
// Logout adds the token's jti; the auth middleware rejects any token whose
// jti is present.
type TokenDenylist interface {
	// Revoke marks a token ID as revoked for the given duration.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether a token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const denylistKeyPrefix = "connecthub:revoked_token:"

// redisTokenDenylist implements TokenDenylist on Redis. Entries expire with
// the token, so the set stays bounded without a sweeper.
type redisTokenDenylist struct {
	client *redis.Client
}

// NewRedisTokenDenylist creates a Redis-backed TokenDenylist.
func NewRedisTokenDenylist(client *redis.Client) TokenDenylist {
	return &redisTokenDenylist{client: client}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to record.
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err()
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryTokenDenylist implements TokenDenylist in process memory. Used when
// Redis is not configured, and in tests.
type memoryTokenDenylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryTokenDenylist creates an in-memory TokenDenylist.
func NewMemoryTokenDenylist() TokenDenylist {
	return &memoryTokenDenylist{revoked: make(map[string]time.Time)}
}

func (d *memoryTokenDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (d *memoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiry, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
