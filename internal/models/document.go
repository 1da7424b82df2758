package models

import "time"

type DocumentType string

type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         DocumentType `json:"type"`
	URL          string       `json:"url"`
	PropertyID   *string      `json:"propertyId"`
	TenantID     *string      `json:"tenantId"`
	LeaseID      *string      `json:"leaseId"`
	UploadedDate time.Time    `json:"uploadedDate"`
	UploadedBy   string       `json:"uploadedBy"`
}

// UploadDocumentRequest is the metadata part of an upload. With multipart
// uploads the same fields arrive as form values.
type UploadDocumentRequest struct {
	Name       string       `json:"name" validate:"required,max=255"`
	Type       DocumentType `json:"type" validate:"required,oneof=lease invoice receipt maintenance notice other"`
	PropertyID *string      `json:"propertyId,omitempty"`
	TenantID   *string      `json:"tenantId,omitempty"`
	LeaseID    *string      `json:"leaseId,omitempty"`
}
