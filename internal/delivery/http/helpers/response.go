package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventcomposer/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest           = "bad_request"
	ErrCodeValidation           = "validation_error"
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeNotFound             = "not_found"
	ErrCodeConflict             = "conflict"
	ErrCodeAlreadyInProgress    = "already_in_progress"
	ErrCodePayloadTooLarge      = "payload_too_large"
	ErrCodeOwnershipWriteFailed = "ownership_write_failed"
	ErrCodeEventWriteFailed     = "event_write_failed"
	ErrCodeInternalError        = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// ErrorResponse maps a service error onto the status, code and message sent to the
// client. Store failures are reported with a generic message; their cause is only logged.
func ErrorResponse(err error) (status int, code, message string) {
	var (
		verr *domain.ValidationError
		oerr *domain.OwnershipWriteError
		eerr *domain.EventWriteError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrCodeValidation, verr.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrCodeUnauthorized, "You must be logged in to create an event"
	case errors.As(err, &oerr):
		return http.StatusBadGateway, ErrCodeOwnershipWriteFailed, "Failed to create event"
	case errors.As(err, &eerr):
		return http.StatusBadGateway, ErrCodeEventWriteFailed, "Failed to create event"
	case errors.Is(err, domain.ErrAlreadyInProgress):
		return http.StatusConflict, ErrCodeAlreadyInProgress, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrCodeConflict, err.Error()
	case errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "internal server error"
	}
}
