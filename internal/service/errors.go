package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password. Keeping one error for both cases is a
	// security decision: callers must not learn which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned by Principal when the session carries
	// no user id, or an id that no longer resolves in the registry. The two
	// cases are deliberately not distinguished.
	ErrUnauthenticated = errors.New("not authenticated")
)
