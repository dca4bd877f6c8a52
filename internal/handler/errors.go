package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"tripplanner/internal/domain"
)

// ErrorDetail is the machine-readable payload of an error response.
// Fields is present only for validation failures: one message per failing
// form field, exactly as the validator produced them, so clients can render
// per-field messages.
type ErrorDetail struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  domain.FieldErrors `json:"fields,omitempty"`
}

// ErrorResponse is the envelope every non-2xx response carries.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes an ErrorResponse with the given status and detail.
func writeError(w http.ResponseWriter, status int, detail ErrorDetail) {
	writeJSON(w, status, ErrorResponse{Error: detail})
}

// badRequest rejects a request before it reaches the service layer
// (malformed or missing body).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrorDetail{Code: "bad_request", Message: message})
}

// serviceError maps a service-layer error onto the HTTP surface:
// validation failures become 422 with the field map, missing resources 404,
// anything else an opaque 500 (the cause is logged, never leaked).
func serviceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusUnprocessableEntity, ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Fields:  ve.Fields,
		})
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusUnprocessableEntity, ErrorDetail{
			Code:    "validation_error",
			Message: err.Error(),
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrorDetail{
			Code:    "not_found",
			Message: notFoundMessage,
		})
		return
	}

	slog.ErrorContext(r.Context(), "handler error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, ErrorDetail{
		Code:    "internal_error",
		Message: "internal server error",
	})
}
