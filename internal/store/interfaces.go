package store

import (
	"context"

	"github.com/MKhiriev/go-role-registry/models"
)

// UserRegistry is the read-only view of the fixed user registry.
//
// The registry is loaded once at process start and never mutated afterwards,
// so implementations may be shared freely across concurrent request handlers
// without locking. Lookups are linear scans: the set is small and static, so
// no index structure is justified.
type UserRegistry interface {
	// FindByUsername returns the record with the given case-sensitive
	// username, or ErrNoUserWasFound.
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByID returns the record with the given opaque identifier, or
	// ErrNoUserWasFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// All returns every record in seed-file order.
	All(ctx context.Context) []models.User
}
