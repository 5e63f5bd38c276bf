package http

import (
	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/service"
	"github.com/MKhiriev/go-role-registry/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}
}
