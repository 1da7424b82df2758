package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/models"
)

type stubLookup struct {
	profiles []*models.Tenant
	owned    []string
	err      error
	calls    int
}

func (s *stubLookup) ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error) {
	s.calls++
	var out []*models.Tenant
	for _, t := range s.profiles {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, s.err
}

func (s *stubLookup) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	s.calls++
	return s.owned, s.err
}

func strPtr(s string) *string { return &s }

func TestPropertyVisibilityByRole(t *testing.T) {
	managed := &models.Property{ID: "p1", OwnerID: "owner-1", ManagerID: strPtr("mgr-1")}
	other := &models.Property{ID: "p2", OwnerID: "owner-2"}

	owner := Scope{Identity: Identity{UserID: "owner-1", Role: models.RoleOwner}}
	assert.True(t, owner.CanSeeProperty(managed))
	assert.False(t, owner.CanSeeProperty(other))

	manager := Scope{Identity: Identity{UserID: "mgr-1", Role: models.RoleManager}}
	assert.True(t, manager.CanSeeProperty(managed))
	assert.False(t, manager.CanSeeProperty(other), "manager only sees properties they manage")

	tenant := Scope{Identity: Identity{UserID: "u-t", Role: models.RoleTenant}, PropertyIDs: []string{"p2"}}
	assert.False(t, tenant.CanSeeProperty(managed))
	assert.True(t, tenant.CanSeeProperty(other))

	noProfiles := Scope{Identity: Identity{UserID: "u-x", Role: models.RoleTenant}}
	assert.False(t, noProfiles.CanSeeProperty(other), "no tenant profile means no properties")
}

func TestRecordVisibilityByRole(t *testing.T) {
	manager := Scope{Identity: Identity{UserID: "m", Role: models.RoleManager}}
	assert.True(t, manager.CanSeeRecord("any-property", "any-tenant"))

	owner := Scope{Identity: Identity{UserID: "o", Role: models.RoleOwner}, PropertyIDs: []string{"p1"}}
	assert.True(t, owner.CanSeeRecord("p1", "t9"))
	assert.False(t, owner.CanSeeRecord("p2", "t9"))
	assert.False(t, owner.CanSeeRecord("", "t9"), "rows without a property are not visible to owners")

	tenant := Scope{Identity: Identity{UserID: "u", Role: models.RoleTenant}, TenantIDs: []string{"t1"}}
	assert.True(t, tenant.CanSeeRecord("p-anything", "t1"))
	assert.False(t, tenant.CanSeeRecord("p-anything", "u"), "tenant rows are keyed by profile id, not user id")
}

func TestUnknownRoleSeesNothing(t *testing.T) {
	s := Scope{Identity: Identity{UserID: "x", Role: models.Role("janitor")}}
	assert.False(t, s.CanSeeRecord("p", "t"))
	assert.False(t, s.CanSeeProperty(&models.Property{ID: "p", OwnerID: "x"}))
}

func TestCanDeleteProperty(t *testing.T) {
	p := &models.Property{ID: "p1", OwnerID: "owner-1", ManagerID: strPtr("mgr-1")}

	assert.True(t, Scope{Identity: Identity{UserID: "owner-1", Role: models.RoleOwner}}.CanDeleteProperty(p))
	assert.False(t, Scope{Identity: Identity{UserID: "owner-2", Role: models.RoleOwner}}.CanDeleteProperty(p))
	assert.False(t, Scope{Identity: Identity{UserID: "mgr-1", Role: models.RoleManager}}.CanDeleteProperty(p))
}

func TestNarrowKeepsScope(t *testing.T) {
	tenant := Scope{Identity: Identity{UserID: "u", Role: models.RoleTenant}, TenantIDs: []string{"t1"}}
	f := tenant.Narrow(models.RecordFilter{PropertyID: "p1"})

	assert.True(t, f.Matches("p1", "t1"))
	assert.False(t, f.Matches("p2", "t1"))
	assert.False(t, f.Matches("p1", "t2"))
}

func TestResolver(t *testing.T) {
	lookup := &stubLookup{
		profiles: []*models.Tenant{
			{ID: "t1", UserID: "u1", PropertyID: "p1"},
			{ID: "t2", UserID: "u1", PropertyID: "p3"},
			{ID: "t3", UserID: "u2", PropertyID: "p2"},
		},
		owned: []string{"p7"},
	}
	r := NewResolver(lookup, lookup)

	scope, err := r.Resolve(context.Background(), Identity{UserID: "u1", Role: models.RoleTenant})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, scope.TenantIDs)
	assert.Equal(t, []string{"p1", "p3"}, scope.PropertyIDs)

	scope, err = r.Resolve(context.Background(), Identity{UserID: "o1", Role: models.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, []string{"p7"}, scope.PropertyIDs)

	lookup.calls = 0
	_, err = r.Resolve(context.Background(), Identity{UserID: "m1", Role: models.RoleManager})
	require.NoError(t, err)
	assert.Zero(t, lookup.calls)
}

func TestResolverPropagatesErrors(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewResolver(&stubLookup{err: boom}, &stubLookup{err: boom})

	_, err := r.Resolve(context.Background(), Identity{UserID: "u1", Role: models.RoleTenant})
	assert.ErrorIs(t, err, boom)
}

func TestWritesRequireTheProfilesOwnProperty(t *testing.T) {
	tenant := Scope{
		Identity:    Identity{UserID: "u-t", Role: models.RoleTenant},
		TenantIDs:   []string{"t1", "t3"},
		PropertyIDs: []string{"p1", "p3"},
	}
	assert.True(t, tenant.CanWriteRecord("p1", "t1"))
	assert.True(t, tenant.CanWriteRecord("p3", "t3"))
	assert.False(t, tenant.CanWriteRecord("p2", "t1"), "own profile paired with a foreign property")
	assert.False(t, tenant.CanWriteRecord("p3", "t1"), "property of a different profile")
	assert.True(t, tenant.CanSeeRecord("p2", "t1"))

	owner := Scope{Identity: Identity{UserID: "o", Role: models.RoleOwner}, PropertyIDs: []string{"p1"}}
	assert.True(t, owner.CanWriteRecord("p1", "t9"))
	assert.False(t, owner.CanWriteRecord("p2", "t9"))
}
