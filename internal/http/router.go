package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mskn-backend/internal/handlers"
	"mskn-backend/internal/middleware"
	"mskn-backend/internal/models"
	"mskn-backend/pkg/utils"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Property    *handlers.PropertyHandler
	Tenant      *handlers.TenantHandler
	Lease       *handlers.LeaseHandler
	Payment     *handlers.PaymentHandler
	Maintenance *handlers.MaintenanceHandler
	Document    *handlers.DocumentHandler
	Report      *handlers.ReportHandler
	Health      *handlers.HealthHandler
}

const (
	manager = models.RoleManager
	tenant  = models.RoleTenant
	owner   = models.RoleOwner
)

func NewRouter(h Handlers, authMiddleware *middleware.AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware, middleware.RequestLogger)

	// only wraps a single handler with the role gate
	gate := func(fn http.HandlerFunc, roles ...models.Role) http.HandlerFunc {
		return authMiddleware.RequireRole(roles...)(fn).ServeHTTP
	}

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	r.HandleFunc("/auth/register", h.Auth.Register).Methods("POST")

	authAPI := r.PathPrefix("/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", h.Auth.Me).Methods("GET")
	authAPI.HandleFunc("/logout", h.Auth.Logout).Methods("POST")

	// Properties
	propertiesAPI := r.PathPrefix("/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", h.Property.List).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", h.Property.Get).Methods("GET")
	propertiesAPI.HandleFunc("", gate(h.Property.Create, manager, owner)).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", gate(h.Property.Update, manager, owner)).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", gate(h.Property.Delete, owner)).Methods("DELETE")

	// Tenant profiles - managers only
	tenantsAPI := r.PathPrefix("/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate, authMiddleware.RequireRole(manager))
	tenantsAPI.HandleFunc("", h.Tenant.List).Methods("GET")
	tenantsAPI.HandleFunc("/property/{propertyId}", h.Tenant.List).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", h.Tenant.Get).Methods("GET")
	tenantsAPI.HandleFunc("", h.Tenant.Create).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", h.Tenant.Update).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}", h.Tenant.Delete).Methods("DELETE")

	// Leases
	leasesAPI := r.PathPrefix("/leases").Subrouter()
	leasesAPI.Use(authMiddleware.Authenticate)
	leasesAPI.HandleFunc("", h.Lease.List).Methods("GET")
	leasesAPI.HandleFunc("/property/{propertyId}", h.Lease.List).Methods("GET")
	leasesAPI.HandleFunc("/tenant/{tenantId}", h.Lease.List).Methods("GET")
	leasesAPI.HandleFunc("/{id}", h.Lease.Get).Methods("GET")
	leasesAPI.HandleFunc("", gate(h.Lease.Create, manager)).Methods("POST")
	leasesAPI.HandleFunc("/{id}", gate(h.Lease.Update, manager)).Methods("PUT")
	leasesAPI.HandleFunc("/{id}", gate(h.Lease.Delete, manager)).Methods("DELETE")

	// Payments
	paymentsAPI := r.PathPrefix("/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", h.Payment.List).Methods("GET")
	paymentsAPI.HandleFunc("/property/{propertyId}", h.Payment.List).Methods("GET")
	paymentsAPI.HandleFunc("/tenant/{tenantId}", h.Payment.List).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", h.Payment.Get).Methods("GET")
	paymentsAPI.HandleFunc("", gate(h.Payment.Create, manager, tenant)).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", gate(h.Payment.Update, manager)).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}/record", gate(h.Payment.Record, manager, tenant)).Methods("POST")

	// Maintenance requests
	maintenanceAPI := r.PathPrefix("/maintenance").Subrouter()
	maintenanceAPI.Use(authMiddleware.Authenticate)
	maintenanceAPI.HandleFunc("", h.Maintenance.List).Methods("GET")
	maintenanceAPI.HandleFunc("/property/{propertyId}", h.Maintenance.List).Methods("GET")
	maintenanceAPI.HandleFunc("/tenant/{tenantId}", h.Maintenance.List).Methods("GET")
	maintenanceAPI.HandleFunc("/{id}", h.Maintenance.Get).Methods("GET")
	maintenanceAPI.HandleFunc("", gate(h.Maintenance.Create, tenant, manager)).Methods("POST")
	maintenanceAPI.HandleFunc("/{id}", gate(h.Maintenance.Update, manager)).Methods("PUT")
	maintenanceAPI.HandleFunc("/{id}/assign", gate(h.Maintenance.Assign, manager)).Methods("POST")
	maintenanceAPI.HandleFunc("/{id}/complete", gate(h.Maintenance.Complete, manager)).Methods("POST")

	// Documents
	documentsAPI := r.PathPrefix("/documents").Subrouter()
	documentsAPI.Use(authMiddleware.Authenticate)
	documentsAPI.HandleFunc("", h.Document.List).Methods("GET")
	documentsAPI.HandleFunc("/upload", gate(h.Document.Upload, manager)).Methods("POST")
	documentsAPI.HandleFunc("/{id}", h.Document.Get).Methods("GET")
	documentsAPI.HandleFunc("/{id}", gate(h.Document.Delete, manager)).Methods("DELETE")

	// Reports
	reportsAPI := r.PathPrefix("/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/property/{id}", gate(h.Report.GetPropertyReport, manager, owner)).Methods("GET")
	reportsAPI.HandleFunc("/owner/{id}", gate(h.Report.GetOwnerReport, owner)).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", h.Health.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", h.Health.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", h.Health.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFoundHandler = middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusNotFound, "Route not found")
	}))
	r.MethodNotAllowedHandler = middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	}))

	return r
}
