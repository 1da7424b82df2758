package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/models"
	"mskn-backend/internal/timeutil"
	"mskn-backend/internal/validation"
)

const msgPropertyNotFound = "Property not found"

type PropertyService struct {
	Repo   PropertyStore
	Scopes Scoper
	now    func() time.Time
}

func NewPropertyService(repo PropertyStore, scopes Scoper) *PropertyService {
	return &PropertyService{Repo: repo, Scopes: scopes, now: timeutil.Now}
}

// List returns the properties visible to the caller.
func (s *PropertyService) List(ctx context.Context, id access.Identity) ([]*models.Property, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	props, err := s.Repo.List(ctx, scope.PropertyFilter())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return props, nil
}

func (s *PropertyService) Get(ctx context.Context, id access.Identity, propertyID string) (*models.Property, error) {
	p, err := s.Repo.Get(ctx, propertyID)
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
	return p, nil
}

func (s *PropertyService) Create(ctx context.Context, id access.Identity, req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !id.Is(models.RoleManager, models.RoleOwner) {
		return nil, apperr.Forbidden("Forbidden")
	}
	if id.Role == models.RoleOwner && req.OwnerID != id.UserID {
		return nil, apperr.Forbidden("Cannot create property for another owner")
	}

	now := s.now()
	p := &models.Property{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		RentAmount:  *req.RentAmount,
		Status:      req.Status,
		OwnerID:     req.OwnerID,
		ManagerID:   req.ManagerID,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Status == "" {
		p.Status = models.PropertyAvailable
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, writeError(err, msgPropertyNotFound, "create property")
	}
	logger.For("PropertyService").WithField("property_id", p.ID).WithField("user_id", id.UserID).Info("Property created")
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, id access.Identity, propertyID string, req *models.UpdatePropertyRequest) (*models.Property, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id, propertyID)
	if err != nil {
		return nil, err
	}
	if !id.Is(models.RoleManager, models.RoleOwner) {
		return nil, denied()
	}
	if id.Role == models.RoleOwner && req.OwnerID != nil && *req.OwnerID != id.UserID {
		return nil, apperr.Forbidden("Cannot assign property to another owner")
	}

	p.Apply(req)
	p.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, writeError(err, msgPropertyNotFound, "update property")
	}
	return p, nil
}

// Delete removes a property and, by cascade, its tenant profiles, leases,
// payments and maintenance requests. Only the owning owner may delete.
func (s *PropertyService) Delete(ctx context.Context, id access.Identity, propertyID string) error {
	p, err := s.Repo.Get(ctx, propertyID)
	if err != nil {
		return lookupError(err, msgPropertyNotFound)
	}
	scope := access.Scope{Identity: id}
	if !scope.CanDeleteProperty(p) {
		return denied()
	}
	if err := s.Repo.Delete(ctx, propertyID); err != nil {
		return writeError(err, msgPropertyNotFound, "delete property")
	}
	logger.For("PropertyService").WithField("property_id", propertyID).WithField("user_id", id.UserID).Info("Property deleted")
	return nil
}
