package service

import (
	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/store"
)

type Services struct {
	AuthService       AuthService
	VisibilityService VisibilityService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRegistry, logger),
		VisibilityService: NewVisibilityService(storages.UserRegistry, logger),
	}
}
