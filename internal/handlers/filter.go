package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/models"
)

// recordFilter reads the by-property and by-tenant narrowing from the route
// (/payments/property/{propertyId}) or the query string (?propertyId=).
func recordFilter(r *http.Request) models.RecordFilter {
	vars := mux.Vars(r)
	q := r.URL.Query()
	f := models.RecordFilter{PropertyID: vars["propertyId"], TenantID: vars["tenantId"]}
	if f.PropertyID == "" {
		f.PropertyID = q.Get("propertyId")
	}
	if f.TenantID == "" {
		f.TenantID = q.Get("tenantId")
	}
	return f
}
