package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/service"
	"github.com/MKhiriev/go-role-registry/internal/session"
	"github.com/MKhiriev/go-role-registry/internal/utils"
	"github.com/MKhiriev/go-role-registry/models"
)

// login authenticates the caller and starts a session.
//
// A malformed body is a 400; any credential failure is a single 401 body so
// that a caller cannot probe which usernames exist. The session cookie is
// written only after the password check succeeds.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid credentials"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := h.sessions.Save(w, &session.Session{UserID: foundUser.ID}); err != nil {
		log.Err(err).Msg("session cookie could not be written")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Message: "login successful", Role: foundUser.Role}, http.StatusOK)
}

// logout clears the session cookie.
//
// It succeeds whether or not a session was present, so the response never
// reveals session state.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)

	utils.WriteJSON(w, models.MessageResponse{Message: "logout successful"}, http.StatusOK)
}
