package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

type MaintenanceHandler struct {
	responder
	Service *services.MaintenanceService
}

func NewMaintenanceHandler(s *services.MaintenanceService, debug bool) *MaintenanceHandler {
	return &MaintenanceHandler{responder: responder{Debug: debug}, Service: s}
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	requests, err := h.Service.List(r.Context(), id, recordFilter(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, requests)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.Service.Get(r.Context(), id, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.CreateMaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.Service.Create(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, m)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.UpdateMaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.Service.Update(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.AssignMaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.Service.Assign(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.CompleteMaintenanceRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			h.respondError(w, r, err)
			return
		}
	}
	m, err := h.Service.Complete(r.Context(), id, mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, m)
}
