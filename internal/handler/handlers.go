// Package handler assembles the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/pulse-auth/internal/config"
	"github.com/MKhiriev/pulse-auth/internal/handler/grpc"
	"github.com/MKhiriev/pulse-auth/internal/handler/http"
	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/service"
)

type Handlers struct {
	// HTTP serves the authentication API.
	HTTP *http.Handler
	// GRPC serves health checks only.
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
