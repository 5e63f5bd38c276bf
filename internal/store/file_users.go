// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/models"
)

// userRecord is the on-disk shape of a registry entry, as written by the
// seed tool. The password hash has a JSON tag only here, on the read path;
// [models.User] excludes the hash from serialization entirely, so a record
// that has crossed this boundary can never leak its hash into a response.
type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// fileUserRegistry is the file-backed implementation of [UserRegistry].
// The backing slice is populated once in [NewFileUserRegistry] and treated
// as immutable from then on.
type fileUserRegistry struct {
	logger *logger.Logger
	users  []models.User
}

// NewFileUserRegistry reads the seed file at path and returns a registry
// over its records.
//
// The file is read exactly once; the server holds no handle to it afterwards
// and never writes it. Any of the following aborts startup:
//   - the file is missing or unreadable;
//   - the content is not a JSON array of user records;
//   - the array is empty ([ErrEmptyRegistry]);
//   - two records share a username or id ([ErrDuplicateUser]).
func NewFileUserRegistry(path string, logger *logger.Logger) (UserRegistry, error) {
	usersFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening users file: %w", err)
	}
	defer usersFile.Close()

	var records []userRecord
	if err := json.NewDecoder(usersFile).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding users file: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyRegistry
	}

	users := make([]models.User, 0, len(records))
	seenUsernames := make(map[string]struct{}, len(records))
	seenIDs := make(map[string]struct{}, len(records))
	for _, record := range records {
		if _, ok := seenUsernames[record.Username]; ok {
			return nil, fmt.Errorf("%w: username %q", ErrDuplicateUser, record.Username)
		}
		if _, ok := seenIDs[record.ID]; ok {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicateUser, record.ID)
		}
		seenUsernames[record.Username] = struct{}{}
		seenIDs[record.ID] = struct{}{}

		users = append(users, models.User{
			ID:           record.ID,
			Username:     record.Username,
			PasswordHash: record.PasswordHash,
			Name:         record.Name,
			Email:        record.Email,
			Role:         record.Role,
		})
	}

	logger.Info().Int("users", len(users)).Str("file", path).Msg("user registry loaded")

	return &fileUserRegistry{
		logger: logger,
		users:  users,
	}, nil
}

// FindByUsername implements [UserRegistry]. The comparison is
// case-sensitive, matching the seed file exactly.
func (r *fileUserRegistry) FindByUsername(ctx context.Context, username string) (models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// FindByID implements [UserRegistry].
func (r *fileUserRegistry) FindByID(ctx context.Context, id string) (models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// All implements [UserRegistry]. The returned slice is a copy so that no
// caller can disturb the registry's seed-file ordering.
func (r *fileUserRegistry) All(ctx context.Context) []models.User {
	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users
}
