package service

import (
	"github.com/MKhiriev/go-shipment-tracker/internal/adapter"
	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

type Services struct {
	AuthService      AuthService
	ShipmentService  ShipmentService
	AuditService     AuditService
	RateLimitService RateLimitService
	AppInfoService   AppInfoService
}

// NewServices wires every service to its storages. Auth and shipment
// services are wrapped with request validation.
func NewServices(
	storages *store.Storages,
	geocoder adapter.Geocoder,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	auditService := NewAuditService(storages.AuditJobRepository, storages.SystemLogRepository, storages.IsRetryable, cfg, logger)

	authService := NewAuthService(storages.UserRepository, storages.TokenRepository, auditService, cfg, logger)
	shipmentService := NewShipmentService(storages.ShipmentRepository, geocoder, auditService, cfg, logger)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(authService),
		ShipmentService:  NewShipmentValidationService().Wrap(shipmentService),
		AuditService:     auditService,
		RateLimitService: NewRateLimitService(storages.RateLimitStore, cfg.Server, logger),
		AppInfoService:   appInfoService,
	}, nil
}
