package services

import (
	"context"
	"time"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
	"mskn-backend/internal/reports"
	"mskn-backend/internal/timeutil"
)

// ReportService loads the rows a report covers and hands them to reports.Build.
type ReportService struct {
	Properties  PropertyStore
	Payments    PaymentStore
	Maintenance MaintenanceStore
	Scopes      Scoper
	now         func() time.Time
}

func NewReportService(properties PropertyStore, payments PaymentStore, maintenance MaintenanceStore, scopes Scoper) *ReportService {
	return &ReportService{
		Properties:  properties,
		Payments:    payments,
		Maintenance: maintenance,
		Scopes:      scopes,
		now:         timeutil.Now,
	}
}

// PropertyReport summarizes one property the caller can see.
func (s *ReportService) PropertyReport(ctx context.Context, id access.Identity, propertyID, period string) (*reports.Report, error) {
	p, err := s.Properties.Get(ctx, propertyID)
	if err != nil {
		return nil, lookupError(err, msgPropertyNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeProperty(p) {
		return nil, denied()
	}

	filter := models.RecordFilter{PropertyID: propertyID}
	return s.build(ctx, reports.PropertyScope(propertyID), filter, period)
}

// OwnerReport summarizes every property owned by ownerID. Owners may only
// request their own portfolio.
func (s *ReportService) OwnerReport(ctx context.Context, id access.Identity, ownerID, period string) (*reports.Report, error) {
	if id.Role != models.RoleOwner || id.UserID != ownerID {
		return nil, denied()
	}
	ids, err := s.Properties.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	filter := models.RecordFilter{PropertyIn: ids, LimitProperties: true}
	return s.build(ctx, reports.OwnerScope(ownerID, ids), filter, period)
}

func (s *ReportService) build(ctx context.Context, scope reports.Scope, filter models.RecordFilter, period string) (*reports.Report, error) {
	payments, err := s.Payments.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	maintenance, err := s.Maintenance.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return reports.Build(scope, period, payments, maintenance, s.now()), nil
}
