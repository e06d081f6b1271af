package http

import (
	"time"

	"github.com/MKhiriev/exercise-tracker/internal/config"
	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// enableReset registers GET /api/reset.
	enableReset bool

	// legacyErrors answers every failure with 200 {"error":"Database error"}.
	legacyErrors bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, log *logger.Logger) *Handler {
	log = log.WithComponent("http")
	log.Info().
		Bool("reset_enabled", cfg.App.EnableReset).
		Bool("legacy_errors", cfg.App.LegacyErrors).
		Msg("http handler created")

	return &Handler{
		services:       services,
		enableReset:    cfg.App.EnableReset,
		legacyErrors:   cfg.App.LegacyErrors,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         log,
	}
}
