package store

import (
	"github.com/MKhiriev/go-role-registry/internal/config"
	"github.com/MKhiriev/go-role-registry/internal/logger"
)

// Storages aggregates every storage backend the application uses. For this
// service that is exactly one: the read-only user registry.
type Storages struct {
	UserRegistry UserRegistry
}

// NewStorages loads all storage backends from cfg. A failure here is fatal
// for the caller: the process cannot serve traffic without its registry.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	userRegistry, err := NewFileUserRegistry(cfg.Users.File, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRegistry: userRegistry,
	}, nil
}
