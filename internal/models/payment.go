package models

import "time"

type PaymentStatus string
type PaymentType string
type PaymentMethod string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentPartial PaymentStatus = "partial"
)

const (
	PaymentRent        PaymentType = "rent"
	PaymentDeposit     PaymentType = "deposit"
	PaymentFee         PaymentType = "fee"
	PaymentMaintenance PaymentType = "maintenance"
)

type Payment struct {
	ID            string         `json:"id"`
	LeaseID       string         `json:"leaseId"`
	TenantID      string         `json:"tenantId"`
	PropertyID    string         `json:"propertyId"`
	Amount        Money          `json:"amount"`
	DueDate       time.Time      `json:"dueDate"`
	PaidDate      *time.Time     `json:"paidDate"`
	Status        PaymentStatus  `json:"status"`
	Type          PaymentType    `json:"type"`
	Method        *PaymentMethod `json:"method"`
	TransactionID *string        `json:"transactionId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type CreatePaymentRequest struct {
	LeaseID       string         `json:"leaseId" validate:"required"`
	TenantID      string         `json:"tenantId" validate:"required"`
	PropertyID    string         `json:"propertyId" validate:"required"`
	Amount        *Money         `json:"amount" validate:"required,min=0,max=99999999.99"`
	DueDate       *Timestamp     `json:"dueDate" validate:"required"`
	PaidDate      *Timestamp     `json:"paidDate,omitempty"`
	Status        PaymentStatus  `json:"status,omitempty" validate:"omitempty,oneof=pending paid overdue partial"`
	Type          PaymentType    `json:"type" validate:"required,oneof=rent deposit fee maintenance"`
	Method        *PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=bank_transfer credit_card check cash"`
	TransactionID *string        `json:"transactionId,omitempty"`
}

type UpdatePaymentRequest struct {
	LeaseID       *string        `json:"leaseId,omitempty" validate:"omitempty,min=1"`
	TenantID      *string        `json:"tenantId,omitempty" validate:"omitempty,min=1"`
	PropertyID    *string        `json:"propertyId,omitempty" validate:"omitempty,min=1"`
	Amount        *Money         `json:"amount,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	DueDate       *Timestamp     `json:"dueDate,omitempty"`
	PaidDate      *Timestamp     `json:"paidDate,omitempty"`
	Status        *PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=pending paid overdue partial"`
	Type          *PaymentType   `json:"type,omitempty" validate:"omitempty,oneof=rent deposit fee maintenance"`
	Method        *PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=bank_transfer credit_card check cash"`
	TransactionID *string        `json:"transactionId,omitempty"`
}

// RecordPaymentRequest marks a payment as settled.
type RecordPaymentRequest struct {
	PaidDate      *Timestamp     `json:"paidDate,omitempty"`
	Method        *PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=bank_transfer credit_card check cash"`
	TransactionID *string        `json:"transactionId,omitempty"`
}

func (p *Payment) Apply(req *UpdatePaymentRequest) {
	if req.LeaseID != nil {
		p.LeaseID = *req.LeaseID
	}
	if req.TenantID != nil {
		p.TenantID = *req.TenantID
	}
	if req.PropertyID != nil {
		p.PropertyID = *req.PropertyID
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate.Time
	}
	if req.PaidDate != nil {
		p.PaidDate = TimeOrNil(req.PaidDate)
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Method != nil {
		p.Method = req.Method
	}
	if req.TransactionID != nil {
		p.TransactionID = req.TransactionID
	}
}
