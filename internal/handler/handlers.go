package handler

import (
	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-shipment-tracker/internal/handler/http"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// probe backs the gRPC health status.
func NewHandlers(services *service.Services, probe grpc.Probe, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, probe, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
