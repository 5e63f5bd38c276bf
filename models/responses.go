package models

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	// Message is a human-readable confirmation.
	Message string `json:"message"`

	// Role echoes the authenticated user's stored role so the client can
	// adjust its UI without an extra round trip.
	Role string `json:"role"`
}

// MessageResponse is a generic success body carrying only a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed API call. The message is kept
// deliberately generic: authentication failures must not reveal whether the
// username or the password was wrong, nor whether a session referenced a
// user that no longer exists.
type ErrorResponse struct {
	Error string `json:"error"`
}
