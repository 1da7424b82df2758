package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

type LeaseHandler struct {
	responder
	Service *services.LeaseService
}

func NewLeaseHandler(s *services.LeaseService, debug bool) *LeaseHandler {
	return &LeaseHandler{responder: responder{Debug: debug}, Service: s}
}

// List serves /leases, /leases/property/{propertyId} and /leases/tenant/{tenantId}
func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	leases, err := h.Service.List(r.Context(), id, recordFilter(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, leases)
}

func (h *LeaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	l, err := h.Service.Get(r.Context(), id, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, l)
}

func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.CreateLeaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	l, err := h.Service.Create(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, l)
}

func (h *LeaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.UpdateLeaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	l, err := h.Service.Update(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, l)
}

func (h *LeaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Service.Delete(r.Context(), id, mux.Vars(r)["id"]); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
