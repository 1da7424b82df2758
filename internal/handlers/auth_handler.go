package handlers

import (
	"net/http"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/middleware"
	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

type AuthHandler struct {
	responder
	Service *services.AuthService
}

func NewAuthHandler(s *services.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{responder: responder{Debug: debug}, Service: s}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	authResp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, authResp)
}

// Login handles user authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	authResp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, authResp)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.Unauthorized("Authentication required"))
		return
	}
	h.respond(w, http.StatusOK, user)
}

// Logout revokes the presented token until it expires
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.Unauthorized("Authentication required"))
		return
	}
	if err := h.Service.Logout(r.Context(), token); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
