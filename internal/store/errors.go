package store

import "errors"

// Sentinel errors returned by registry methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup by username or id matches
	// no record in the registry.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmptyRegistry is returned at load time when the seed file decodes
	// successfully but contains no records. An empty registry cannot serve
	// any login, so startup is aborted instead of serving guaranteed 401s.
	ErrEmptyRegistry = errors.New("user registry file contains no records")

	// ErrDuplicateUser is returned at load time when two records share a
	// username or an id, which would make lookups ambiguous.
	ErrDuplicateUser = errors.New("duplicate username or id in user registry")
)
