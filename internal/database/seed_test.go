package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/auth"
	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories/memory"
)

func memoryStores(s *memory.Store) Stores {
	return Stores{
		Users:       s.Users(),
		Properties:  s.Properties(),
		Tenants:     s.Tenants(),
		Leases:      s.Leases(),
		Payments:    s.Payments(),
		Maintenance: s.Maintenance(),
	}
}

func TestSeedCreatesLinkedDemoData(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, Seed(ctx, memoryStores(s)))

	owner, err := s.Users().GetByEmail(ctx, "owner@mskn.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, owner.Role)
	assert.True(t, auth.VerifyPassword(owner.PasswordHash, DemoPassword))

	ids, err := s.Properties().IDsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	tenantUser, err := s.Users().GetByEmail(ctx, "tenant@mskn.com")
	require.NoError(t, err)
	profiles, err := s.Tenants().ListByUser(ctx, tenantUser.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.NotNil(t, profiles[0].LeaseID)

	payments, err := s.Payments().List(ctx, models.RecordFilter{TenantID: profiles[0].ID})
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	requests, err := s.Maintenance().List(ctx, models.RecordFilter{PropertyID: profiles[0].PropertyID})
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, Seed(ctx, memoryStores(s)))
	require.NoError(t, Seed(ctx, memoryStores(s)))

	props, err := s.Properties().List(ctx, models.PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, props, 2)
}
