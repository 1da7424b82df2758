package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/metrics"
	"mskn-backend/internal/reports"
	"mskn-backend/internal/services"
)

type ReportHandler struct {
	responder
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService, debug bool) *ReportHandler {
	return &ReportHandler{responder: responder{Debug: debug}, Service: s}
}

// GetPropertyReport handles GET /reports/property/{id}?period=&format=
func (h *ReportHandler) GetPropertyReport(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	rep, err := h.Service.PropertyReport(r.Context(), id, mux.Vars(r)["id"], r.URL.Query().Get("period"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.write(w, r, "property", rep)
}

// GetOwnerReport handles GET /reports/owner/{id}?period=&format=
func (h *ReportHandler) GetOwnerReport(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	rep, err := h.Service.OwnerReport(r.Context(), id, mux.Vars(r)["id"], r.URL.Query().Get("period"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.write(w, r, "owner", rep)
}

func (h *ReportHandler) write(w http.ResponseWriter, r *http.Request, kind string, rep *reports.Report) {
	format := r.URL.Query().Get("format")

	var (
		body        []byte
		err         error
		contentType string
	)
	switch format {
	case "", "json":
		metrics.ReportsGenerated.WithLabelValues(kind, "json").Inc()
		h.respond(w, http.StatusOK, rep)
		return
	case "pdf":
		body, err = rep.PDF()
		contentType = "application/pdf"
	case "csv":
		body, err = rep.CSV()
		contentType = "text/csv"
	default:
		h.respondError(w, r, apperr.BadRequest("Unsupported format; use json, pdf or csv"))
		return
	}
	if err != nil {
		h.respondError(w, r, apperr.Internal(err))
		return
	}
	metrics.ReportsGenerated.WithLabelValues(kind, format).Inc()

	filename := fmt.Sprintf("%s.%s", rep.ID, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
