package models

import "time"

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
)

type Lease struct {
	ID          string      `json:"id"`
	PropertyID  string      `json:"propertyId"`
	TenantID    string      `json:"tenantId"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	MonthlyRent Money       `json:"monthlyRent"`
	Deposit     Money       `json:"deposit"`
	Status      LeaseStatus `json:"status"`
	Terms       *string     `json:"terms"`
	SignedDate  time.Time   `json:"signedDate"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateLeaseRequest struct {
	PropertyID  string      `json:"propertyId" validate:"required"`
	TenantID    string      `json:"tenantId" validate:"required"`
	StartDate   *Timestamp  `json:"startDate" validate:"required"`
	EndDate     *Timestamp  `json:"endDate" validate:"required"`
	MonthlyRent *Money      `json:"monthlyRent" validate:"required,min=0,max=99999999.99"`
	Deposit     *Money      `json:"deposit" validate:"required,min=0,max=99999999.99"`
	Status      LeaseStatus `json:"status,omitempty" validate:"omitempty,oneof=active expired terminated"`
	Terms       *string     `json:"terms,omitempty"`
	SignedDate  *Timestamp  `json:"signedDate" validate:"required"`
}

type UpdateLeaseRequest struct {
	PropertyID  *string      `json:"propertyId,omitempty" validate:"omitempty,min=1"`
	TenantID    *string      `json:"tenantId,omitempty" validate:"omitempty,min=1"`
	StartDate   *Timestamp   `json:"startDate,omitempty"`
	EndDate     *Timestamp   `json:"endDate,omitempty"`
	MonthlyRent *Money       `json:"monthlyRent,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	Deposit     *Money       `json:"deposit,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	Status      *LeaseStatus `json:"status,omitempty" validate:"omitempty,oneof=active expired terminated"`
	Terms       *string      `json:"terms,omitempty"`
	SignedDate  *Timestamp   `json:"signedDate,omitempty"`
}

func (l *Lease) Apply(req *UpdateLeaseRequest) {
	if req.PropertyID != nil {
		l.PropertyID = *req.PropertyID
	}
	if req.TenantID != nil {
		l.TenantID = *req.TenantID
	}
	if req.StartDate != nil {
		l.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		l.EndDate = req.EndDate.Time
	}
	if req.MonthlyRent != nil {
		l.MonthlyRent = *req.MonthlyRent
	}
	if req.Deposit != nil {
		l.Deposit = *req.Deposit
	}
	if req.Status != nil {
		l.Status = *req.Status
	}
	if req.Terms != nil {
		l.Terms = req.Terms
	}
	if req.SignedDate != nil {
		l.SignedDate = req.SignedDate.Time
	}
}
