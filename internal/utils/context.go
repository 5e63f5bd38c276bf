// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-role-registry/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the authenticated user in the
// context. Used together with GetPrincipalFromContext for type-safe retrieval
// of the principal from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, user)
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated user from the context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // handle missing principal in context
//	}
func GetPrincipalFromContext(ctx context.Context) (models.User, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return principal, ok
}
