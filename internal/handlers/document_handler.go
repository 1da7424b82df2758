package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
	"mskn-backend/internal/services"
)

const maxUploadBytes = 20 << 20

type DocumentHandler struct {
	responder
	Service *services.DocumentService
}

func NewDocumentHandler(s *services.DocumentService, debug bool) *DocumentHandler {
	return &DocumentHandler{responder: responder{Debug: debug}, Service: s}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	docs, err := h.Service.List(r.Context(), id, recordFilter(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, docs)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	d, err := h.Service.Get(r.Context(), id, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, d)
}

// Upload accepts either a JSON metadata body or a multipart form whose
// optional "file" part is stored alongside the metadata fields.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.UploadDocumentRequest
	var file *services.FileUpload

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.respondError(w, r, apperr.BadRequest("Invalid multipart form"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		req.Name = strings.TrimSpace(r.FormValue("name"))
		req.Type = models.DocumentType(r.FormValue("type"))
		req.PropertyID = formString(r, "propertyId")
		req.TenantID = formString(r, "tenantId")
		req.LeaseID = formString(r, "leaseId")

		part, header, err := r.FormFile("file")
		switch {
		case err == nil:
			defer part.Close()
			if req.Name == "" {
				req.Name = header.Filename
			}
			file = &services.FileUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        part,
			}
		case !errors.Is(err, http.ErrMissingFile):
			h.respondError(w, r, apperr.BadRequest("Invalid file upload"))
			return
		}
	} else if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	d, err := h.Service.Upload(r.Context(), id, &req, file)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, d)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func formString(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
