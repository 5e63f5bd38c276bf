package models

// Role values recognised by the visibility policy. The registry stores the
// role as a free-form string; anything that is neither RoleAdmin nor
// RoleSupervisor is treated as the most restrictive tier.
const (
	// RoleAdmin grants visibility over the entire registry.
	RoleAdmin = "admin"

	// RoleSupervisor grants visibility over every non-admin record.
	RoleSupervisor = "supervisor"
)

// User represents a single record of the fixed user registry.
// Records are immutable after startup: the registry is loaded once from the
// seed file and never modified at runtime.
type User struct {
	// ID is the opaque unique identifier of the user. It is the only value
	// ever placed into session state.
	ID string `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is excluded from JSON serialization so that no API response can
	// ever carry it; the store layer maps it in from the seed file directly.
	PasswordHash string `json:"-"`

	// Name is the display name of the user. Non-sensitive.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Role determines which registry records this user may view.
	Role string `json:"role"`
}
