package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/services"
)

// Response is the base envelope for JSON replies.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, Response{Success: success, Message: message})
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// requireAuth validates the session token and returns the authenticated
// user's ID. Returns (uuid.Nil, false) if not authenticated.
func requireAuth(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(r.Context(), token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// writeStoreError maps service errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		writeMessage(w, http.StatusBadRequest, false, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		writeMessage(w, http.StatusForbidden, false, "You do not have access to this entry")
	case errors.Is(err, apperrors.ErrNotFound):
		writeMessage(w, http.StatusNotFound, false, "Entry not found")
	case errors.Is(err, apperrors.ErrConflict):
		writeMessage(w, http.StatusConflict, false, "An entry already exists for that date")
	case errors.Is(err, apperrors.ErrParse):
		writeMessage(w, http.StatusBadGateway, false, "The AI returned an unexpected response. Please try again.")
	case errors.Is(err, apperrors.ErrCompletion):
		writeMessage(w, http.StatusBadGateway, false, "The AI service is unavailable. Please try again.")
	default:
		writeMessage(w, http.StatusInternalServerError, false, "Something went wrong")
	}
}
