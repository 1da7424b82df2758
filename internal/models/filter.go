package models

import "slices"

// PropertyFilter narrows a property listing. Zero value matches everything.
type PropertyFilter struct {
	OwnerID   string
	ManagerID string
	// IDIn is only applied when LimitIDs is set; an empty set then matches nothing.
	IDIn     []string
	LimitIDs bool
}

func (f PropertyFilter) Matches(p *Property) bool {
	if f.OwnerID != "" && p.OwnerID != f.OwnerID {
		return false
	}
	if f.ManagerID != "" && (p.ManagerID == nil || *p.ManagerID != f.ManagerID) {
		return false
	}
	if f.LimitIDs && !slices.Contains(f.IDIn, p.ID) {
		return false
	}
	return true
}

// RecordFilter narrows listings of rows that hang off a property and a tenant
// profile (tenant profiles, leases, payments, maintenance requests, documents).
type RecordFilter struct {
	PropertyID string
	TenantID   string

	PropertyIn      []string
	LimitProperties bool
	TenantIn        []string
	LimitTenants    bool
}

// Matches reports whether a row with the given keys passes the filter. Pass ""
// for a key the row does not carry.
func (f RecordFilter) Matches(propertyID, tenantID string) bool {
	if f.PropertyID != "" && propertyID != f.PropertyID {
		return false
	}
	if f.TenantID != "" && tenantID != f.TenantID {
		return false
	}
	if f.LimitProperties && (propertyID == "" || !slices.Contains(f.PropertyIn, propertyID)) {
		return false
	}
	if f.LimitTenants && (tenantID == "" || !slices.Contains(f.TenantIn, tenantID)) {
		return false
	}
	return true
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
