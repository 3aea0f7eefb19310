package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the health status is reported under, next to the
// server-wide status ("").
const ServiceName = "shipment-tracker"

const probeTimeout = 2 * time.Second

// Probe reports whether the backing stores are reachable.
type Probe func(ctx context.Context) error

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health checking protocol. The reported status
// follows the result of the most recent probe.
type Handler struct {
	services *service.Services
	health   *health.Server
	probe    Probe

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil probe always reports serving.
func NewHandler(services *service.Services, probe Probe, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		probe:    probe,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh runs the probe and publishes its outcome.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	if h.probe != nil {
		ctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()

		if err := h.probe(ctx); err != nil {
			h.logger.Warn().Err(err).Str("func", "*Handler.Refresh").Msg("health probe failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	return status
}

// Shutdown reports NOT_SERVING to every client and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
