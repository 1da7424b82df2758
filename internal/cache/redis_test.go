package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mskn-backend/internal/config"
)

func TestDenylistWithoutRedisIsNoop(t *testing.T) {
	ctx := context.Background()
	d := NewDenylist(nil)

	assert.False(t, d.Enabled())
	assert.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.False(t, d.IsRevoked(ctx, "jti-1"))
	assert.ErrorIs(t, d.Ping(ctx), ErrDisabled)
}

func TestNilDenylistIsNoop(t *testing.T) {
	var d *Denylist
	assert.False(t, d.Enabled())
	assert.False(t, d.IsRevoked(context.Background(), "jti-1"))
}

func TestConnectWithoutAddressReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, Connect(context.Background(), cfg))
}
