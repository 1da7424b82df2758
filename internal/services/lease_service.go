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

const msgLeaseNotFound = "Lease not found"

type LeaseService struct {
	Repo   LeaseStore
	Scopes Scoper
	now    func() time.Time
}

func NewLeaseService(repo LeaseStore, scopes Scoper) *LeaseService {
	return &LeaseService{Repo: repo, Scopes: scopes, now: timeutil.Now}
}

// List returns visible leases, optionally narrowed by property or tenant.
func (s *LeaseService) List(ctx context.Context, id access.Identity, f models.RecordFilter) ([]*models.Lease, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	leases, err := s.Repo.List(ctx, scope.Narrow(f))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return leases, nil
}

func (s *LeaseService) Get(ctx context.Context, id access.Identity, leaseID string) (*models.Lease, error) {
	l, err := s.Repo.Get(ctx, leaseID)
	if err != nil {
		return nil, lookupError(err, msgLeaseNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(l.PropertyID, l.TenantID) {
		return nil, denied()
	}
	return l, nil
}

func (s *LeaseService) Create(ctx context.Context, id access.Identity, req *models.CreateLeaseRequest) (*models.Lease, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.EndDate.Before(req.StartDate.Time) {
		return nil, apperr.BadRequest("End date must not be before start date")
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(req.PropertyID, req.TenantID) {
		return nil, denied()
	}

	now := s.now()
	l := &models.Lease{
		ID:          uuid.NewString(),
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		MonthlyRent: *req.MonthlyRent,
		Deposit:     *req.Deposit,
		Status:      req.Status,
		Terms:       req.Terms,
		SignedDate:  req.SignedDate.Time,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if l.Status == "" {
		l.Status = models.LeaseActive
	}

	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, writeError(err, msgLeaseNotFound, "create lease")
	}
	return l, nil
}

func (s *LeaseService) Update(ctx context.Context, id access.Identity, leaseID string, req *models.UpdateLeaseRequest) (*models.Lease, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	l, err := s.Get(ctx, id, leaseID)
	if err != nil {
		return nil, err
	}

	l.Apply(req)
	if l.EndDate.Before(l.StartDate) {
		return nil, apperr.BadRequest("End date must not be before start date")
	}
	l.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, l); err != nil {
		return nil, writeError(err, msgLeaseNotFound, "update lease")
	}
	return l, nil
}

func (s *LeaseService) Delete(ctx context.Context, id access.Identity, leaseID string) error {
	if _, err := s.Get(ctx, id, leaseID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, leaseID); err != nil {
		return writeError(err, msgLeaseNotFound, "delete lease")
	}
	return nil
}
