package service

import (
	"context"

	"github.com/MKhiriev/go-role-registry/models"
)

// AuthService verifies credentials and resolves session references back into
// registry records.
type AuthService interface {
	// Login verifies username/password against the registry. Unknown
	// username and wrong password both fail with ErrInvalidCredentials so
	// the caller cannot learn which check rejected the attempt.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Principal resolves a session-carried user id to its registry record.
	// An empty or dangling id fails with ErrUnauthenticated; the two cases
	// are deliberately indistinguishable.
	Principal(ctx context.Context, userID string) (models.User, error)
}

// VisibilityService decides which registry records a principal may view.
type VisibilityService interface {
	// VisibleUsers returns the subset of the registry visible to principal,
	// in seed-file order. It is total: every role, recognised or not, maps
	// to some (possibly single-element) subset.
	VisibleUsers(ctx context.Context, principal models.User) []models.User
}
