// Package access decides which rows a caller may see and change, given the
// identity established by the auth middleware.
package access

import (
	"context"
	"fmt"

	"mskn-backend/internal/models"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserID string
	Role   models.Role
}

func (i Identity) Is(roles ...models.Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Scope is an Identity plus the id sets its visibility depends on.
//   - tenant: TenantIDs are the caller's tenant profiles, PropertyIDs the properties they link to
//   - owner: PropertyIDs are the properties the caller owns
//   - manager: both sets are unused
type Scope struct {
	Identity
	TenantIDs   []string
	PropertyIDs []string
}

// PropertyFilter restricts property listings. Managers see the properties
// they manage, owners the ones they own, tenants the ones their profiles link to.
func (s Scope) PropertyFilter() models.PropertyFilter {
	switch s.Role {
	case models.RoleManager:
		return models.PropertyFilter{ManagerID: s.UserID}
	case models.RoleOwner:
		return models.PropertyFilter{OwnerID: s.UserID}
	case models.RoleTenant:
		return models.PropertyFilter{IDIn: s.PropertyIDs, LimitIDs: true}
	}
	return models.PropertyFilter{LimitIDs: true}
}

// RecordFilter restricts listings of leases, payments, maintenance requests,
// documents and tenant profiles. Managers are unrestricted.
func (s Scope) RecordFilter() models.RecordFilter {
	switch s.Role {
	case models.RoleManager:
		return models.RecordFilter{}
	case models.RoleOwner:
		return models.RecordFilter{PropertyIn: s.PropertyIDs, LimitProperties: true}
	case models.RoleTenant:
		return models.RecordFilter{TenantIn: s.TenantIDs, LimitTenants: true}
	}
	return models.RecordFilter{LimitTenants: true}
}

func (s Scope) CanSeeProperty(p *models.Property) bool {
	return s.PropertyFilter().Matches(p)
}

func (s Scope) CanSeeRecord(propertyID, tenantID string) bool {
	return s.RecordFilter().Matches(propertyID, tenantID)
}

// CanWriteRecord is CanSeeRecord, except that a tenant must name one of their
// profiles together with the property that profile is linked to.
func (s Scope) CanWriteRecord(propertyID, tenantID string) bool {
	if s.Role != models.RoleTenant {
		return s.CanSeeRecord(propertyID, tenantID)
	}
	for i, id := range s.TenantIDs {
		if id == tenantID && i < len(s.PropertyIDs) && s.PropertyIDs[i] == propertyID {
			return true
		}
	}
	return false
}

// CanDeleteProperty is narrower than CanSeeProperty: only the owning owner may delete.
func (s Scope) CanDeleteProperty(p *models.Property) bool {
	return s.Role == models.RoleOwner && p.OwnerID == s.UserID
}

// Narrow combines a caller-supplied filter (by property, by tenant) with the scope.
func (s Scope) Narrow(f models.RecordFilter) models.RecordFilter {
	scoped := s.RecordFilter()
	scoped.PropertyID = f.PropertyID
	scoped.TenantID = f.TenantID
	return scoped
}

// TenantLookup finds the tenant profiles that belong to a user.
type TenantLookup interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error)
}

// OwnerLookup finds the ids of properties owned by a user.
type OwnerLookup interface {
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type Resolver struct {
	tenants    TenantLookup
	properties OwnerLookup
}

func NewResolver(tenants TenantLookup, properties OwnerLookup) *Resolver {
	return &Resolver{tenants: tenants, properties: properties}
}

// Resolve loads the id sets the identity's role needs. Managers cost no queries.
func (r *Resolver) Resolve(ctx context.Context, id Identity) (Scope, error) {
	scope := Scope{Identity: id}

	switch id.Role {
	case models.RoleTenant:
		profiles, err := r.tenants.ListByUser(ctx, id.UserID)
		if err != nil {
			return scope, fmt.Errorf("load tenant profiles: %w", err)
		}
		scope.TenantIDs = make([]string, 0, len(profiles))
		scope.PropertyIDs = make([]string, 0, len(profiles))
		for _, t := range profiles {
			scope.TenantIDs = append(scope.TenantIDs, t.ID)
			scope.PropertyIDs = append(scope.PropertyIDs, t.PropertyID)
		}
	case models.RoleOwner:
		ids, err := r.properties.IDsByOwner(ctx, id.UserID)
		if err != nil {
			return scope, fmt.Errorf("load owned properties: %w", err)
		}
		scope.PropertyIDs = ids
	}

	return scope, nil
}
