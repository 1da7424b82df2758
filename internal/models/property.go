package models

import "time"

type PropertyType string
type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "available"
	PropertyOccupied    PropertyStatus = "occupied"
	PropertyMaintenance PropertyStatus = "maintenance"
)

type Property struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Type        PropertyType   `json:"type"`
	Bedrooms    *int           `json:"bedrooms"`
	Bathrooms   *int           `json:"bathrooms"`
	SquareFeet  *int           `json:"squareFeet"`
	RentAmount  Money          `json:"rentAmount"`
	Status      PropertyStatus `json:"status"`
	OwnerID     string         `json:"ownerId"`
	ManagerID   *string        `json:"managerId"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CreatePropertyRequest struct {
	Name        string         `json:"name" validate:"required"`
	Address     string         `json:"address" validate:"required"`
	City        string         `json:"city" validate:"required"`
	State       string         `json:"state" validate:"required,min=2"`
	ZipCode     string         `json:"zipCode" validate:"required,zipcode"`
	Type        PropertyType   `json:"type" validate:"required,oneof=apartment house commercial condo"`
	Bedrooms    *int           `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms   *int           `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	SquareFeet  *int           `json:"squareFeet,omitempty" validate:"omitempty,min=0"`
	RentAmount  *Money         `json:"rentAmount" validate:"required,min=0,max=99999999.99"`
	Status      PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
	OwnerID     string         `json:"ownerId" validate:"required"`
	ManagerID   *string        `json:"managerId,omitempty"`
	Description *string        `json:"description,omitempty"`
}

// UpdatePropertyRequest carries only the fields a caller wants to change.
type UpdatePropertyRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Address     *string         `json:"address,omitempty" validate:"omitempty,min=1"`
	City        *string         `json:"city,omitempty" validate:"omitempty,min=1"`
	State       *string         `json:"state,omitempty" validate:"omitempty,min=2"`
	ZipCode     *string         `json:"zipCode,omitempty" validate:"omitempty,zipcode"`
	Type        *PropertyType   `json:"type,omitempty" validate:"omitempty,oneof=apartment house commercial condo"`
	Bedrooms    *int            `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms   *int            `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	SquareFeet  *int            `json:"squareFeet,omitempty" validate:"omitempty,min=0"`
	RentAmount  *Money          `json:"rentAmount,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	Status      *PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
	OwnerID     *string         `json:"ownerId,omitempty" validate:"omitempty,min=1"`
	ManagerID   *string         `json:"managerId,omitempty"`
	Description *string         `json:"description,omitempty"`
}

func (p *Property) Apply(req *UpdatePropertyRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.ZipCode != nil {
		p.ZipCode = *req.ZipCode
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Bedrooms != nil {
		p.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = req.Bathrooms
	}
	if req.SquareFeet != nil {
		p.SquareFeet = req.SquareFeet
	}
	if req.RentAmount != nil {
		p.RentAmount = *req.RentAmount
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.OwnerID != nil {
		p.OwnerID = *req.OwnerID
	}
	if req.ManagerID != nil {
		p.ManagerID = req.ManagerID
	}
	if req.Description != nil {
		p.Description = req.Description
	}
}
