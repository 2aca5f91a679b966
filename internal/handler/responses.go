package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MyteScripts/investbot/internal/domain"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to a buffer first; headers are already sent, so an encode
	// failure can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
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

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError   = "User not found. Register first."
	ErrMsgNotEnoughCoinsError = "Not enough coins"

	ErrMsgVentureNotFoundError = "You don't own that venture"
	ErrMsgUnknownTypeError     = "No such venture in the catalog"
	ErrMsgAlreadyOwnedError    = "You already own one of those"
	ErrMsgIncidentActiveError  = "That venture has an unresolved incident. Repair it first."
	ErrMsgNoIncidentError      = "That venture has nothing to repair"
	ErrMsgOnCooldownError      = "Collection is on cooldown. Try again later."
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrVentureNotFound):
		return http.StatusNotFound, ErrMsgVentureNotFoundError
	case errors.Is(err, domain.ErrUnknownVentureType):
		return http.StatusBadRequest, ErrMsgUnknownTypeError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrRiskEventActive):
		return http.StatusConflict, ErrMsgIncidentActiveError
	case errors.Is(err, domain.ErrNoRiskEvent):
		return http.StatusBadRequest, ErrMsgNoIncidentError
	case errors.Is(err, domain.ErrCollectOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
