// Package memory holds map-backed implementations of the repository
// contracts. They back the demo server mode and the service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories"
)

// Store owns all tables; the typed views returned by its methods share one lock.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*models.User
	properties  map[string]*models.Property
	tenants     map[string]*models.Tenant
	leases      map[string]*models.Lease
	payments    map[string]*models.Payment
	maintenance map[string]*models.MaintenanceRequest
	documents   map[string]*models.Document
}

func NewStore() *Store {
	return &Store{
		users:       map[string]*models.User{},
		properties:  map[string]*models.Property{},
		tenants:     map[string]*models.Tenant{},
		leases:      map[string]*models.Lease{},
		payments:    map[string]*models.Payment{},
		maintenance: map[string]*models.MaintenanceRequest{},
		documents:   map[string]*models.Document{},
	}
}

func (s *Store) Users() *UserRepo              { return &UserRepo{s} }
func (s *Store) Properties() *PropertyRepo     { return &PropertyRepo{s} }
func (s *Store) Tenants() *TenantRepo          { return &TenantRepo{s} }
func (s *Store) Leases() *LeaseRepo            { return &LeaseRepo{s} }
func (s *Store) Payments() *PaymentRepo        { return &PaymentRepo{s} }
func (s *Store) Maintenance() *MaintenanceRepo { return &MaintenanceRepo{s} }
func (s *Store) Documents() *DocumentRepo      { return &DocumentRepo{s} }

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func get[T any](s *Store, table map[string]*T, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := table[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(v), nil
}

func put[T any](s *Store, table map[string]*T, id string, v *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table[id] = clone(v)
}

func replace[T any](s *Store, table map[string]*T, id string, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := table[id]; !ok {
		return repositories.ErrNotFound
	}
	table[id] = clone(v)
	return nil
}

func remove[T any](s *Store, table map[string]*T, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := table[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(table, id)
	return nil
}

func list[T any](s *Store, table map[string]*T, keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*T{}
	for _, v := range table {
		if keep(v) {
			out = append(out, clone(v))
		}
	}
	return out
}

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	r.s.users[u.ID] = clone(u)
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	return get(r.s, r.s.users, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	matches := list(r.s, r.s.users, func(u *models.User) bool { return u.Email == email })
	if len(matches) == 0 {
		return nil, repositories.ErrNotFound
	}
	return matches[0], nil
}

type PropertyRepo struct{ s *Store }

func (r *PropertyRepo) Create(ctx context.Context, p *models.Property) error {
	put(r.s, r.s.properties, p.ID, p)
	return nil
}

func (r *PropertyRepo) Get(ctx context.Context, id string) (*models.Property, error) {
	return get(r.s, r.s.properties, id)
}

func (r *PropertyRepo) List(ctx context.Context, f models.PropertyFilter) ([]*models.Property, error) {
	out := list(r.s, r.s.properties, f.Matches)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PropertyRepo) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	props, _ := r.List(ctx, models.PropertyFilter{OwnerID: ownerID})
	var ids []string
	for _, p := range props {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *PropertyRepo) Update(ctx context.Context, p *models.Property) error {
	return replace(r.s, r.s.properties, p.ID, p)
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	return remove(r.s, r.s.properties, id)
}

type TenantRepo struct{ s *Store }

func (r *TenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	put(r.s, r.s.tenants, t.ID, t)
	return nil
}

func (r *TenantRepo) Get(ctx context.Context, id string) (*models.Tenant, error) {
	return get(r.s, r.s.tenants, id)
}

func (r *TenantRepo) List(ctx context.Context, f models.RecordFilter) ([]*models.Tenant, error) {
	out := list(r.s, r.s.tenants, func(t *models.Tenant) bool { return f.Matches(t.PropertyID, t.ID) })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TenantRepo) ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error) {
	out := list(r.s, r.s.tenants, func(t *models.Tenant) bool { return t.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	return replace(r.s, r.s.tenants, t.ID, t)
}

func (r *TenantRepo) Delete(ctx context.Context, id string) error {
	return remove(r.s, r.s.tenants, id)
}

type LeaseRepo struct{ s *Store }

func (r *LeaseRepo) Create(ctx context.Context, l *models.Lease) error {
	put(r.s, r.s.leases, l.ID, l)
	return nil
}

func (r *LeaseRepo) Get(ctx context.Context, id string) (*models.Lease, error) {
	return get(r.s, r.s.leases, id)
}

func (r *LeaseRepo) List(ctx context.Context, f models.RecordFilter) ([]*models.Lease, error) {
	out := list(r.s, r.s.leases, func(l *models.Lease) bool { return f.Matches(l.PropertyID, l.TenantID) })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LeaseRepo) Update(ctx context.Context, l *models.Lease) error {
	return replace(r.s, r.s.leases, l.ID, l)
}

func (r *LeaseRepo) Delete(ctx context.Context, id string) error {
	return remove(r.s, r.s.leases, id)
}

type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	put(r.s, r.s.payments, p.ID, p)
	return nil
}

func (r *PaymentRepo) Get(ctx context.Context, id string) (*models.Payment, error) {
	return get(r.s, r.s.payments, id)
}

func (r *PaymentRepo) List(ctx context.Context, f models.RecordFilter) ([]*models.Payment, error) {
	out := list(r.s, r.s.payments, func(p *models.Payment) bool { return f.Matches(p.PropertyID, p.TenantID) })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PaymentRepo) Update(ctx context.Context, p *models.Payment) error {
	return replace(r.s, r.s.payments, p.ID, p)
}

type MaintenanceRepo struct{ s *Store }

func (r *MaintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	put(r.s, r.s.maintenance, m.ID, m)
	return nil
}

func (r *MaintenanceRepo) Get(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	return get(r.s, r.s.maintenance, id)
}

func (r *MaintenanceRepo) List(ctx context.Context, f models.RecordFilter) ([]*models.MaintenanceRequest, error) {
	out := list(r.s, r.s.maintenance, func(m *models.MaintenanceRequest) bool { return f.Matches(m.PropertyID, m.TenantID) })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MaintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	return replace(r.s, r.s.maintenance, m.ID, m)
}

type DocumentRepo struct{ s *Store }

func (r *DocumentRepo) Create(ctx context.Context, d *models.Document) error {
	put(r.s, r.s.documents, d.ID, d)
	return nil
}

func (r *DocumentRepo) Get(ctx context.Context, id string) (*models.Document, error) {
	return get(r.s, r.s.documents, id)
}

func (r *DocumentRepo) List(ctx context.Context, f models.RecordFilter) ([]*models.Document, error) {
	out := list(r.s, r.s.documents, func(d *models.Document) bool {
		return f.Matches(models.Deref(d.PropertyID), models.Deref(d.TenantID))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	return remove(r.s, r.s.documents, id)
}
