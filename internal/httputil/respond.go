// Package httputil holds the JSON request/response helpers shared by all
// handlers, including the mapping from the service error taxonomy to HTTP
// status codes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fnb-ordering/internal/models"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error writes a JSON error body.
func Error(w http.ResponseWriter, status int, message, requestID string) {
	JSON(w, status, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}

// FromError maps a service error to an HTTP response. Validation errors and
// not-found/conflict sentinels carry their message; anything else is a 500
// with a generic body so internal detail never reaches the client.
func FromError(w http.ResponseWriter, err error, requestID string) {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		Error(w, http.StatusBadRequest, ve.Error(), requestID)
	case errors.Is(err, models.ErrNotFound):
		Error(w, http.StatusNotFound, "Not found", requestID)
	case errors.Is(err, models.ErrConflict):
		Error(w, http.StatusConflict, "Already exists", requestID)
	case errors.Is(err, models.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid credentials", requestID)
	default:
		Error(w, http.StatusInternalServerError, "Internal server error", requestID)
	}
}

// Decode reads the request body into dst, rejecting unknown fields.
func Decode(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
