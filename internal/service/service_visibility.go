// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/store"
	"github.com/MKhiriev/go-role-registry/models"
)

// visibilityService is the concrete implementation of VisibilityService.
type visibilityService struct {
	userRegistry store.UserRegistry
	logger       *logger.Logger
}

// NewVisibilityService constructs a VisibilityService over the given registry.
func NewVisibilityService(userRegistry store.UserRegistry, logger *logger.Logger) VisibilityService {
	return &visibilityService{
		userRegistry: userRegistry,
		logger:       logger,
	}
}

// VisibleUsers applies the three-tier visibility rule:
//
//   - admin sees the whole registry;
//   - supervisor sees everyone who is not an admin;
//   - anyone else — including a role this build does not recognise — sees
//     only their own record.
//
// The tie-break order (admin, then supervisor, else self-only) makes an
// unrecognised role fall into the most restrictive tier by construction.
// Seed-file ordering is preserved in every branch.
func (v *visibilityService) VisibleUsers(ctx context.Context, principal models.User) []models.User {
	all := v.userRegistry.All(ctx)

	switch principal.Role {
	case models.RoleAdmin:
		return all

	case models.RoleSupervisor:
		visible := make([]models.User, 0, len(all))
		for _, user := range all {
			if user.Role != models.RoleAdmin {
				visible = append(visible, user)
			}
		}
		return visible

	default:
		for _, user := range all {
			if user.ID == principal.ID {
				return []models.User{user}
			}
		}
		return []models.User{}
	}
}
