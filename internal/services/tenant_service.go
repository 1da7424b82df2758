package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
	"mskn-backend/internal/timeutil"
	"mskn-backend/internal/validation"
)

const msgTenantNotFound = "Tenant not found"

// TenantService manages tenant profiles. A profile's own id is the tenant key
// used by the record filters.
type TenantService struct {
	Repo   TenantStore
	Scopes Scoper
	now    func() time.Time
}

func NewTenantService(repo TenantStore, scopes Scoper) *TenantService {
	return &TenantService{Repo: repo, Scopes: scopes, now: timeutil.Now}
}

// List returns visible tenant profiles, optionally narrowed by property.
func (s *TenantService) List(ctx context.Context, id access.Identity, f models.RecordFilter) ([]*models.Tenant, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	tenants, err := s.Repo.List(ctx, scope.Narrow(f))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tenants, nil
}

func (s *TenantService) Get(ctx context.Context, id access.Identity, tenantID string) (*models.Tenant, error) {
	t, err := s.Repo.Get(ctx, tenantID)
	if err != nil {
		return nil, lookupError(err, msgTenantNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(t.PropertyID, t.ID) {
		return nil, denied()
	}
	return t, nil
}

func (s *TenantService) Create(ctx context.Context, id access.Identity, req *models.CreateTenantRequest) (*models.Tenant, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	t := &models.Tenant{
		ID:                           uuid.NewString(),
		UserID:                       req.UserID,
		PropertyID:                   req.PropertyID,
		LeaseID:                      req.LeaseID,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		MoveInDate:                   req.MoveInDate.Time,
		MoveOutDate:                  models.TimeOrNil(req.MoveOutDate),
		Status:                       req.Status,
		CreatedAt:                    now,
		UpdatedAt:                    now,
	}
	if t.Status == "" {
		t.Status = models.TenantActive
	}

	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(t.PropertyID, t.ID) {
		return nil, denied()
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, writeError(err, msgTenantNotFound, "create tenant")
	}
	return t, nil
}

func (s *TenantService) Update(ctx context.Context, id access.Identity, tenantID string, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	t, err := s.Get(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	t.Apply(req)
	t.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, writeError(err, msgTenantNotFound, "update tenant")
	}
	return t, nil
}

func (s *TenantService) Delete(ctx context.Context, id access.Identity, tenantID string) error {
	if _, err := s.Get(ctx, id, tenantID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, tenantID); err != nil {
		return writeError(err, msgTenantNotFound, "delete tenant")
	}
	return nil
}
