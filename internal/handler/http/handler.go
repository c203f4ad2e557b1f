package http

import (
	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/service"
)

type Handler struct {
	services *service.Services
	app      config.ServerApp

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}
