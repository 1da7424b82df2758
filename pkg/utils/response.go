package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response. Error and Stack are
// only filled outside production.
type ErrorBody struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Message: message})
}
