// Package cache holds the Redis-backed token denylist. Every operation
// degrades to a no-op when Redis is not configured or unreachable.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mskn-backend/internal/config"
	"mskn-backend/internal/logger"
)

const revokedKeyPrefix = "auth:revoked:"

// Connect opens a Redis client and pings it. A nil client is returned when
// no address is configured or the ping fails.
func Connect(ctx context.Context, cfg *config.Config) *redis.Client {
	log := logger.For("Cache")
	if cfg.Redis.Addr == "" {
		log.Info("Redis not configured, token revocation disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		// Close the failed client and continue without Redis
		client.Close()
		log.WithError(err).Warn("Redis unavailable, token revocation disabled")
		return nil
	}
	log.WithField("addr", cfg.Redis.Addr).Info("Connected to Redis")
	return client
}

// Denylist records revoked token ids until their natural expiry.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

func (d *Denylist) Enabled() bool {
	return d != nil && d.client != nil
}

// Revoke stores the token id until expiresAt. Already expired tokens are skipped.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !d.Enabled() || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

// IsRevoked reports whether the token id was revoked. Lookup failures are
// logged and treated as not revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) bool {
	if !d.Enabled() || tokenID == "" {
		return false
	}
	err := d.client.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if err == nil {
		return true
	}
	if !errors.Is(err, redis.Nil) {
		logger.For("Cache").WithError(err).Warn("Revocation lookup failed")
	}
	return false
}

// Ping returns nil when Redis answers and ErrDisabled when it is not configured.
func (d *Denylist) Ping(ctx context.Context) error {
	if !d.Enabled() {
		return ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.client.Ping(ctx).Err()
}

var ErrDisabled = errors.New("redis not configured")
