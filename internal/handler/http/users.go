// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/utils"
)

// me returns the authenticated user's own record.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context: auth middleware is missing from the chain")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

// listUsers returns the registry filtered by the caller's role.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context: auth middleware is missing from the chain")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	visible := h.services.VisibilityService.VisibleUsers(ctx, principal)

	utils.WriteJSON(w, visible, http.StatusOK)
}
