package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "Request body is required"},
		{"truncated", `{"email":`, "Invalid request body"},
		{"wrong type", `{"email":42}`, "Field 'email' has the wrong type"},
		{"unknown field", `{"email":"a@b.com","role":"x"}`, `Unknown field "role"`},
		{"two objects", `{"email":"a@b.com"}{"email":"c@d.com"}`, "Request body must contain a single JSON object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var dst models.LoginRequest
			err := decodeJSON(httptest.NewRecorder(), r, &dst)
			require.Error(t, err)
			appErr := apperr.From(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tt.want, appErr.Message)
		})
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
	var dst models.LoginRequest
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &dst))
	assert.Equal(t, "a@b.com", dst.Email)
}

func TestRespondErrorHidesCauseOutsideDebug(t *testing.T) {
	cause := errors.New("pq: connection refused")

	for _, debug := range []bool{false, true} {
		rec := httptest.NewRecorder()
		responder{Debug: debug}.respondError(rec, httptest.NewRequest("GET", "/properties", nil), cause)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body["message"])
		if debug {
			assert.Equal(t, cause.Error(), body["error"])
		} else {
			assert.NotContains(t, rec.Body.String(), "connection refused")
		}
	}
}

func TestRespondErrorKeepsValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	details := []map[string]string{{"field": "email", "message": "email is required"}}
	responder{}.respondError(rec, httptest.NewRequest("POST", "/auth/login", nil), apperr.Validation(details))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Validation error","errors":[{"field":"email","message":"email is required"}]}`, rec.Body.String())
}
