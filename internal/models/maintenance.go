package models

import "time"

type MaintenanceCategory string
type MaintenancePriority string

const PriorityMedium MaintenancePriority = "medium"

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

type MaintenanceRequest struct {
	ID            string              `json:"id"`
	PropertyID    string              `json:"propertyId"`
	TenantID      string              `json:"tenantId"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      MaintenanceCategory `json:"category"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	RequestedDate time.Time           `json:"requestedDate"`
	CompletedDate *time.Time          `json:"completedDate"`
	AssignedTo    *string             `json:"assignedTo"`
	EstimatedCost *Money              `json:"estimatedCost"`
	ActualCost    *Money              `json:"actualCost"`
	Notes         *string             `json:"notes"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type CreateMaintenanceRequest struct {
	PropertyID    string              `json:"propertyId" validate:"required"`
	TenantID      string              `json:"tenantId" validate:"required"`
	Title         string              `json:"title" validate:"required,min=1"`
	Description   string              `json:"description" validate:"required,min=10"`
	Category      MaintenanceCategory `json:"category" validate:"required,oneof=plumbing electrical hvac appliance structural other"`
	Priority      MaintenancePriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high emergency"`
	EstimatedCost *Money              `json:"estimatedCost,omitempty" validate:"omitempty,min=0,max=99999999.99"`
}

type UpdateMaintenanceRequest struct {
	Title         *string              `json:"title,omitempty" validate:"omitempty,min=1"`
	Description   *string              `json:"description,omitempty" validate:"omitempty,min=10"`
	Category      *MaintenanceCategory `json:"category,omitempty" validate:"omitempty,oneof=plumbing electrical hvac appliance structural other"`
	Priority      *MaintenancePriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high emergency"`
	Status        *MaintenanceStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	AssignedTo    *string              `json:"assignedTo,omitempty"`
	EstimatedCost *Money               `json:"estimatedCost,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	ActualCost    *Money               `json:"actualCost,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	CompletedDate *Timestamp           `json:"completedDate,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
}

type AssignMaintenanceRequest struct {
	AssignedTo string `json:"assignedTo" validate:"required"`
}

type CompleteMaintenanceRequest struct {
	CompletedDate *Timestamp `json:"completedDate,omitempty"`
	ActualCost    *Money     `json:"actualCost,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	Notes         *string    `json:"notes,omitempty"`
}

func (m *MaintenanceRequest) Apply(req *UpdateMaintenanceRequest) {
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Priority != nil {
		m.Priority = *req.Priority
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.AssignedTo != nil {
		m.AssignedTo = req.AssignedTo
	}
	if req.EstimatedCost != nil {
		m.EstimatedCost = req.EstimatedCost
	}
	if req.ActualCost != nil {
		m.ActualCost = req.ActualCost
	}
	if req.CompletedDate != nil {
		m.CompletedDate = TimeOrNil(req.CompletedDate)
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}
}
