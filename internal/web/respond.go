package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"tripplanner/internal/service"
)

// errorResponse is the wire shape for every failure.
type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal store failure: logged, and
// surfaced as a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateIdentity):
		respondError(w, http.StatusBadRequest, "Email or nickname already registered")
	case errors.Is(err, service.ErrSelfMembership):
		respondError(w, http.StatusBadRequest, "Cannot add yourself as a member")
	case errors.Is(err, service.ErrDuplicateMembership):
		respondError(w, http.StatusBadRequest, "User is already a member")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("Internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON parses the request body into v. A malformed body is a client
// error, reported by the caller as 400.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
