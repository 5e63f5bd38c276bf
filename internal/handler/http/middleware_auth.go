package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/service"
	"github.com/MKhiriev/go-role-registry/internal/utils"
	"github.com/MKhiriev/go-role-registry/models"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It decodes the session cookie, resolves the carried user id via
// [service.AuthService.Principal], and — on success — stores the full record
// in the request context under [utils.PrincipalCtxKey] before delegating to
// the next handler.
//
// Every rejection — no cookie, a tampered cookie, or a session whose user id
// no longer resolves — produces the same 401 body, so a response cannot be
// used to probe registry contents.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess := h.sessions.Load(r)

		ctx := r.Context()
		principal, err := h.services.AuthService.Principal(ctx, sess.UserID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				utils.WriteJSON(w, models.ErrorResponse{Error: "not authenticated"}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("unexpected error occurred during principal resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user's record in the context so that
		// downstream handlers can use it without re-reading the cookie.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
