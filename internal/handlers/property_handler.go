package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

type PropertyHandler struct {
	responder
	Service *services.PropertyService
}

func NewPropertyHandler(s *services.PropertyService, debug bool) *PropertyHandler {
	return &PropertyHandler{responder: responder{Debug: debug}, Service: s}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	props, err := h.Service.List(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, props)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
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

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.CreatePropertyRequest
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

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req models.UpdatePropertyRequest
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

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
