package http

import (
	"time"

	"github.com/MKhiriev/pulse-auth/internal/config"
	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/service"
	"github.com/MKhiriev/pulse-auth/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request, including store calls made with
	// the request context. Zero disables the limit.
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
