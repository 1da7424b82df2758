package services

import (
	"context"

	"mskn-backend/internal/access"
	"mskn-backend/internal/models"
)

// The store interfaces are satisfied by the pgx repositories and by the
// in-memory store.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) error
	Get(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context, f models.PropertyFilter) ([]*models.Property, error)
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id string) error
}

type TenantStore interface {
	Create(ctx context.Context, t *models.Tenant) error
	Get(ctx context.Context, id string) (*models.Tenant, error)
	List(ctx context.Context, f models.RecordFilter) ([]*models.Tenant, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error)
	Update(ctx context.Context, t *models.Tenant) error
	Delete(ctx context.Context, id string) error
}

type LeaseStore interface {
	Create(ctx context.Context, l *models.Lease) error
	Get(ctx context.Context, id string) (*models.Lease, error)
	List(ctx context.Context, f models.RecordFilter) ([]*models.Lease, error)
	Update(ctx context.Context, l *models.Lease) error
	Delete(ctx context.Context, id string) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, f models.RecordFilter) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
}

type MaintenanceStore interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	Get(ctx context.Context, id string) (*models.MaintenanceRequest, error)
	List(ctx context.Context, f models.RecordFilter) ([]*models.MaintenanceRequest, error)
	Update(ctx context.Context, m *models.MaintenanceRequest) error
}

type DocumentStore interface {
	Create(ctx context.Context, d *models.Document) error
	Get(ctx context.Context, id string) (*models.Document, error)
	List(ctx context.Context, f models.RecordFilter) ([]*models.Document, error)
	Delete(ctx context.Context, id string) error
}

// Scoper resolves the visibility scope of a caller.
type Scoper interface {
	Resolve(ctx context.Context, id access.Identity) (access.Scope, error)
}
