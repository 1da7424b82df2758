package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

type PaymentHandler struct {
	responder
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService, debug bool) *PaymentHandler {
	return &PaymentHandler{responder: responder{Debug: debug}, Service: s}
}

// List serves /payments, /payments/property/{propertyId} and /payments/tenant/{tenantId}
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	payments, err := h.Service.List(r.Context(), id, recordFilter(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	p, err := h.Service.Get(r.Context(), id, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.CreatePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	p, err := h.Service.Create(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, p)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.UpdatePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	p, err := h.Service.Update(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

// Record handles POST /payments/{id}/record. An empty body records a payment
// made now.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.RecordPaymentRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			h.respondError(w, r, err)
			return
		}
	}
	p, err := h.Service.Record(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}
