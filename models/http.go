package models

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	// Username is the login identifier to authenticate.
	Username string `json:"username"`

	// Password is the plaintext password to verify against the stored hash.
	// It is never persisted or logged.
	Password string `json:"password"`
}
