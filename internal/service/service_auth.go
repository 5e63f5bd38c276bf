package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/store"
	"github.com/MKhiriev/go-role-registry/models"
)

// authService is the concrete implementation of AuthService.
// It verifies passwords against the bcrypt hashes held by the registry and
// resolves session-carried user ids back into records.
type authService struct {
	// userRegistry is the read-only registry used for all lookups.
	userRegistry store.UserRegistry

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given registry.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRegistry store.UserRegistry, logger *logger.Logger) AuthService {
	return &authService{
		userRegistry: userRegistry,
		logger:       logger,
	}
}

// Login authenticates a user by username and plaintext password.
//
// The stored hash is bcrypt, so the comparison is slow and salted by
// construction, and its duration does not depend on where a mismatch occurs.
// Every failure — unknown username, wrong password, empty input — collapses
// into ErrInvalidCredentials; only the log distinguishes them.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRegistry.FindByUsername(ctx, username)
	if err != nil {
		log.Debug().Str("username", username).Msg("login rejected: unknown username")
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("login rejected: password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	log.Debug().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	return foundUser, nil
}

// Principal resolves the user id carried by a session.
//
// An empty id means no one is logged in; a non-empty id that no longer
// resolves means the session references a record that has since left the
// registry. Both cases return ErrUnauthenticated so that a response cannot
// reveal registry state.
func (a *authService) Principal(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRegistry.FindByID(ctx, userID)
	if err != nil {
		log.Debug().Str("id", userID).Msg("session references an unknown user")
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}
