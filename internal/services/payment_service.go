package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories"
	"mskn-backend/internal/timeutil"
	"mskn-backend/internal/validation"
)

const msgPaymentNotFound = "Payment not found"

// PaymentService records rent and fee payments. Payments are never deleted.
type PaymentService struct {
	Repo   PaymentStore
	Leases LeaseStore
	Scopes Scoper
	now    func() time.Time
}

func NewPaymentService(repo PaymentStore, leases LeaseStore, scopes Scoper) *PaymentService {
	return &PaymentService{Repo: repo, Leases: leases, Scopes: scopes, now: timeutil.Now}
}

func (s *PaymentService) List(ctx context.Context, id access.Identity, f models.RecordFilter) ([]*models.Payment, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.Repo.List(ctx, scope.Narrow(f))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return payments, nil
}

func (s *PaymentService) Get(ctx context.Context, id access.Identity, paymentID string) (*models.Payment, error) {
	p, err := s.Repo.Get(ctx, paymentID)
	if err != nil {
		return nil, lookupError(err, msgPaymentNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(p.PropertyID, p.TenantID) {
		return nil, denied()
	}
	return p, nil
}

// Create stores a payment against an existing lease. A tenant may only pay
// on one of their own profiles, and their payments always start pending.
func (s *PaymentService) Create(ctx context.Context, id access.Identity, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanWriteRecord(req.PropertyID, req.TenantID) {
		return nil, denied()
	}
	if err := s.checkLease(ctx, req); err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Payment{
		ID:            uuid.NewString(),
		LeaseID:       req.LeaseID,
		TenantID:      req.TenantID,
		PropertyID:    req.PropertyID,
		Amount:        *req.Amount,
		DueDate:       req.DueDate.Time,
		PaidDate:      models.TimeOrNil(req.PaidDate),
		Status:        req.Status,
		Type:          req.Type,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.Status == "" || id.Role == models.RoleTenant {
		p.Status = models.PaymentPending
	}
	if id.Role == models.RoleTenant {
		p.PaidDate = nil
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, writeError(err, msgPaymentNotFound, "create payment")
	}
	return p, nil
}

// checkLease requires the payment's tenant and property to be the lease's.
func (s *PaymentService) checkLease(ctx context.Context, req *models.CreatePaymentRequest) error {
	lease, err := s.Leases.Get(ctx, req.LeaseID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.BadRequest("Lease not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if lease.TenantID != req.TenantID || lease.PropertyID != req.PropertyID {
		return apperr.BadRequest("Lease does not belong to this tenant and property")
	}
	return nil
}

func (s *PaymentService) Update(ctx context.Context, id access.Identity, paymentID string, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id, paymentID)
	if err != nil {
		return nil, err
	}

	p.Apply(req)
	p.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, writeError(err, msgPaymentNotFound, "update payment")
	}
	return p, nil
}

// Record marks a payment as paid. The paid date defaults to now.
func (s *PaymentService) Record(ctx context.Context, id access.Identity, paymentID string, req *models.RecordPaymentRequest) (*models.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id, paymentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	paid := now
	if req.PaidDate != nil {
		paid = req.PaidDate.Time
	}
	p.PaidDate = &paid
	p.Status = models.PaymentPaid
	if req.Method != nil {
		p.Method = req.Method
	}
	if req.TransactionID != nil {
		p.TransactionID = req.TransactionID
	}
	p.UpdatedAt = now

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, writeError(err, msgPaymentNotFound, "record payment")
	}
	logger.For("PaymentService").WithField("payment_id", p.ID).WithField("user_id", id.UserID).Info("Payment recorded")
	return p, nil
}
