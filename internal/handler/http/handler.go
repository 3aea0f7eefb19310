package http

import (
	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
)

const defaultPageSize uint64 = 10

type Handler struct {
	services *service.Services

	production bool
	pageSize   uint64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		production: cfg.IsProduction(),
		pageSize:   pageSize,
		logger:     logger,
	}
}
