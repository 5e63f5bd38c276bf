package session

import "errors"

var (
	// ErrInvalidSecret is returned by NewManager when the configured secret
	// is not valid hex or does not decode to exactly 32 bytes.
	ErrInvalidSecret = errors.New("session secret must be 32 bytes of hex")

	// ErrKeyGeneration is returned by NewManager when the OS CSPRNG cannot
	// produce a transient session key.
	ErrKeyGeneration = errors.New("could not generate a transient session key")
)
