package models

import "time"

type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantInactive TenantStatus = "inactive"
	TenantPending  TenantStatus = "pending"
)

type Tenant struct {
	ID                           string       `json:"id"`
	UserID                       string       `json:"userId"`
	PropertyID                   string       `json:"propertyId"`
	LeaseID                      *string      `json:"leaseId"`
	EmergencyContactName         *string      `json:"emergencyContactName"`
	EmergencyContactPhone        *string      `json:"emergencyContactPhone"`
	EmergencyContactRelationship *string      `json:"emergencyContactRelationship"`
	MoveInDate                   time.Time    `json:"moveInDate"`
	MoveOutDate                  *time.Time   `json:"moveOutDate"`
	Status                       TenantStatus `json:"status"`
	CreatedAt                    time.Time    `json:"createdAt"`
	UpdatedAt                    time.Time    `json:"updatedAt"`
}

type CreateTenantRequest struct {
	UserID                       string       `json:"userId" validate:"required"`
	PropertyID                   string       `json:"propertyId" validate:"required"`
	LeaseID                      *string      `json:"leaseId,omitempty"`
	EmergencyContactName         *string      `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        *string      `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship *string      `json:"emergencyContactRelationship,omitempty"`
	MoveInDate                   *Timestamp   `json:"moveInDate" validate:"required"`
	MoveOutDate                  *Timestamp   `json:"moveOutDate,omitempty"`
	Status                       TenantStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

type UpdateTenantRequest struct {
	UserID                       *string       `json:"userId,omitempty" validate:"omitempty,min=1"`
	PropertyID                   *string       `json:"propertyId,omitempty" validate:"omitempty,min=1"`
	LeaseID                      *string       `json:"leaseId,omitempty"`
	EmergencyContactName         *string       `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        *string       `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship *string       `json:"emergencyContactRelationship,omitempty"`
	MoveInDate                   *Timestamp    `json:"moveInDate,omitempty"`
	MoveOutDate                  *Timestamp    `json:"moveOutDate,omitempty"`
	Status                       *TenantStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

func (t *Tenant) Apply(req *UpdateTenantRequest) {
	if req.UserID != nil {
		t.UserID = *req.UserID
	}
	if req.PropertyID != nil {
		t.PropertyID = *req.PropertyID
	}
	if req.LeaseID != nil {
		t.LeaseID = req.LeaseID
	}
	if req.EmergencyContactName != nil {
		t.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		t.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.EmergencyContactRelationship != nil {
		t.EmergencyContactRelationship = req.EmergencyContactRelationship
	}
	if req.MoveInDate != nil {
		t.MoveInDate = req.MoveInDate.Time
	}
	if req.MoveOutDate != nil {
		t.MoveOutDate = TimeOrNil(req.MoveOutDate)
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
}
