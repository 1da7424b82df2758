package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/middleware"
	"mskn-backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// responder writes JSON results and errors. With Debug set, the cause of an
// error is added to the body; it must be false in production.
type responder struct {
	Debug bool
}

func (rs responder) respond(w http.ResponseWriter, status int, data interface{}) {
	utils.JSON(w, status, data)
}

func (rs responder) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)

	entry := logger.For("HTTP").WithField("method", r.Method).WithField("path", r.URL.Path)
	if appErr.Status >= http.StatusInternalServerError {
		entry.WithError(err).Error("Request failed")
	} else {
		entry.WithField("status", appErr.Status).Debug(appErr.Message)
	}

	body := utils.ErrorBody{Message: appErr.Message, Errors: appErr.Details}
	if rs.Debug && appErr.Err != nil {
		body.Error = appErr.Err.Error()
	}
	utils.JSON(w, appErr.Status, body)
}

// decodeJSON reads a single JSON object into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var sizeErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return apperr.BadRequest("Request body is required")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return apperr.BadRequest("Invalid request body")
		case errors.As(err, &typeErr):
			return apperr.BadRequest(fmt.Sprintf("Field '%s' has the wrong type", typeErr.Field))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return apperr.BadRequest(fmt.Sprintf("Unknown field %s", field))
		case errors.As(err, &sizeErr):
			return apperr.BadRequest("Request body too large")
		default:
			return apperr.BadRequest("Invalid request body")
		}
	}
	if dec.More() {
		return apperr.BadRequest("Request body must contain a single JSON object")
	}
	return nil
}

func identity(r *http.Request) (access.Identity, error) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return id, apperr.Unauthorized("Authentication required")
	}
	return id, nil
}
