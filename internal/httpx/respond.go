// Package httpx holds the HTTP plumbing shared by the module handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/validate"
)

// JSON writes body as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error writes err as {"error": message} with the status for its kind.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	JSON(w, status, map[string]string{"error": apperr.Message(err)})
}

// StatusFor maps an apperr kind to an HTTP status code.
func StatusFor(err error) int {
	switch {
	// Persistence first: its cause may itself match another kind.
	case errors.Is(err, apperr.ErrPersistence):
		return http.StatusInternalServerError
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DecodePayload reads the request body as a JSON object. An empty body decodes
// to an empty payload.
func DecodePayload(r *http.Request) (validate.Payload, error) {
	p := validate.Payload{}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return validate.Payload{}, nil
		}
		return nil, apperr.Validation("request body must be a JSON object")
	}
	if p == nil {
		// literal null
		return validate.Payload{}, nil
	}
	return p, nil
}
