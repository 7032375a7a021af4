package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers already went out, nothing to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgPatientNotFoundError  = "Patient not found"
	ErrMsgBadgeNotFoundError    = "Badge not found"
	ErrMsgGoalsAlreadyGenError  = "Goals have already been generated today. Try again tomorrow."
	ErrMsgGoalPersistenceError  = "Could not save goals. Please try again."
	ErrMsgInvalidTimezoneError  = "Invalid timezone"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPatientNotFound):
		return http.StatusNotFound, ErrMsgPatientNotFoundError
	case errors.Is(err, domain.ErrBadgeNotFound):
		return http.StatusBadRequest, ErrMsgBadgeNotFoundError
	case errors.Is(err, domain.ErrGoalsAlreadyGenerated):
		// same-day regeneration is a client mistake, not a server fault
		return http.StatusBadRequest, ErrMsgGoalsAlreadyGenError
	case errors.Is(err, domain.ErrGoalPersistence):
		return http.StatusInternalServerError, ErrMsgGoalPersistenceError
	case errors.Is(err, domain.ErrInvalidTimezone):
		return http.StatusBadRequest, ErrMsgInvalidTimezoneError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUnmappedMetric):
		// catalog/engine mismatch, surfaced loudly
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
