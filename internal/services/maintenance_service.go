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

const msgMaintenanceNotFound = "Maintenance request not found"

type MaintenanceService struct {
	Repo   MaintenanceStore
	Scopes Scoper
	now    func() time.Time
}

func NewMaintenanceService(repo MaintenanceStore, scopes Scoper) *MaintenanceService {
	return &MaintenanceService{Repo: repo, Scopes: scopes, now: timeutil.Now}
}

func (s *MaintenanceService) List(ctx context.Context, id access.Identity, f models.RecordFilter) ([]*models.MaintenanceRequest, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	requests, err := s.Repo.List(ctx, scope.Narrow(f))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return requests, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id access.Identity, requestID string) (*models.MaintenanceRequest, error) {
	m, err := s.Repo.Get(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, msgMaintenanceNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(m.PropertyID, m.TenantID) {
		return nil, denied()
	}
	return m, nil
}

// Create opens a pending request dated now.
func (s *MaintenanceService) Create(ctx context.Context, id access.Identity, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
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

	now := s.now()
	m := &models.MaintenanceRequest{
		ID:            uuid.NewString(),
		PropertyID:    req.PropertyID,
		TenantID:      req.TenantID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        models.MaintenancePending,
		RequestedDate: now,
		EstimatedCost: req.EstimatedCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if m.Priority == "" {
		m.Priority = models.PriorityMedium
	}

	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, writeError(err, msgMaintenanceNotFound, "create maintenance request")
	}
	return m, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id access.Identity, requestID string, req *models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id, requestID)
	if err != nil {
		return nil, err
	}

	m.Apply(req)
	return s.save(ctx, m, "update maintenance request")
}

// Assign hands the request to a contractor and moves it to in_progress.
func (s *MaintenanceService) Assign(ctx context.Context, id access.Identity, requestID string, req *models.AssignMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id, requestID)
	if err != nil {
		return nil, err
	}

	assignee := req.AssignedTo
	m.AssignedTo = &assignee
	m.Status = models.MaintenanceInProgress
	return s.save(ctx, m, "assign maintenance request")
}

// Complete closes the request. The completion date defaults to now.
func (s *MaintenanceService) Complete(ctx context.Context, id access.Identity, requestID string, req *models.CompleteMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id, requestID)
	if err != nil {
		return nil, err
	}

	completed := s.now()
	if req.CompletedDate != nil {
		completed = req.CompletedDate.Time
	}
	m.Status = models.MaintenanceCompleted
	m.CompletedDate = &completed
	if req.ActualCost != nil {
		m.ActualCost = req.ActualCost
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}
	return s.save(ctx, m, "complete maintenance request")
}

func (s *MaintenanceService) save(ctx context.Context, m *models.MaintenanceRequest, action string) (*models.MaintenanceRequest, error) {
	m.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, writeError(err, msgMaintenanceNotFound, action)
	}
	return m, nil
}
