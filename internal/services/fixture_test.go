package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories/memory"
)

var (
	fixedNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	manager     = access.Identity{UserID: "mgr-1", Role: models.RoleManager}
	ownerOne    = access.Identity{UserID: "owner-1", Role: models.RoleOwner}
	ownerTwo    = access.Identity{UserID: "owner-2", Role: models.RoleOwner}
	tenantUser  = access.Identity{UserID: "tenant-user-1", Role: models.RoleTenant}
	strangerTen = access.Identity{UserID: "tenant-user-2", Role: models.RoleTenant}
)

func ptr[T any](v T) *T { return &v }

func clock() time.Time { return fixedNow }

// fixture seeds two properties: p1 owned by owner-1 and managed by mgr-1 with
// one tenant profile t1, and p2 owned by owner-2 with a profile t2.
type fixture struct {
	store    *memory.Store
	resolver *access.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	props := []*models.Property{
		{ID: "p1", Name: "Maple Court", OwnerID: "owner-1", ManagerID: ptr("mgr-1"), RentAmount: models.NewMoney(1000), Status: models.PropertyOccupied},
		{ID: "p2", Name: "Oak House", OwnerID: "owner-2", RentAmount: models.NewMoney(1500), Status: models.PropertyAvailable},
	}
	for _, p := range props {
		require.NoError(t, s.Properties().Create(ctx, p))
	}

	require.NoError(t, s.Tenants().Create(ctx, &models.Tenant{ID: "t1", UserID: "tenant-user-1", PropertyID: "p1", Status: models.TenantActive}))
	require.NoError(t, s.Tenants().Create(ctx, &models.Tenant{ID: "t2", UserID: "tenant-user-9", PropertyID: "p2", Status: models.TenantActive}))

	require.NoError(t, s.Leases().Create(ctx, &models.Lease{ID: "l1", PropertyID: "p1", TenantID: "t1", MonthlyRent: models.NewMoney(1000)}))
	require.NoError(t, s.Leases().Create(ctx, &models.Lease{ID: "l2", PropertyID: "p2", TenantID: "t2", MonthlyRent: models.NewMoney(1500)}))

	payments := []*models.Payment{
		{ID: "pay1", LeaseID: "l1", PropertyID: "p1", TenantID: "t1", Amount: models.NewMoney(1000), Status: models.PaymentPaid, Type: models.PaymentRent, DueDate: fixedNow.AddDate(0, 0, -3)},
		{ID: "pay2", LeaseID: "l1", PropertyID: "p1", TenantID: "t1", Amount: models.NewMoney(500), Status: models.PaymentPaid, Type: models.PaymentFee, DueDate: fixedNow.AddDate(0, 0, -3)},
		{ID: "pay3", LeaseID: "l1", PropertyID: "p1", TenantID: "t1", Amount: models.NewMoney(1000), Status: models.PaymentPending, Type: models.PaymentRent, DueDate: fixedNow},
		{ID: "pay4", LeaseID: "l2", PropertyID: "p2", TenantID: "t2", Amount: models.NewMoney(1500), Status: models.PaymentPaid, Type: models.PaymentRent, DueDate: fixedNow},
	}
	for _, p := range payments {
		require.NoError(t, s.Payments().Create(ctx, p))
	}

	require.NoError(t, s.Maintenance().Create(ctx, &models.MaintenanceRequest{ID: "mr1", PropertyID: "p1", TenantID: "t1", Title: "Leak", Status: models.MaintenancePending}))
	require.NoError(t, s.Maintenance().Create(ctx, &models.MaintenanceRequest{ID: "mr2", PropertyID: "p1", TenantID: "t1", Title: "Heater", Status: models.MaintenanceCompleted, ActualCost: ptr(models.NewMoney(250))}))

	return &fixture{store: s, resolver: access.NewResolver(s.Tenants(), s.Properties())}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected *apperr.Error, got %v", err)
	return appErr.Status
}

func ids[T any](items []*T, id func(*T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
