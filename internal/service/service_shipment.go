// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/adapter"
	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/metrics"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"golang.org/x/sync/errgroup"
)

// Audit actions recorded by the shipment lifecycle.
const (
	ActionShipmentCreated       = "Shipment created"
	ActionShipmentStatusUpdated = "Shipment status updated"
)

// maxTrackingNumberAttempts bounds how often creation is retried after a
// tracking number collision.
const maxTrackingNumberAttempts = 3

// shipmentService is the concrete implementation of ShipmentService.
type shipmentService struct {
	shipmentRepository store.ShipmentRepository
	geocoder           adapter.Geocoder
	audit              AuditService

	trackingNumbers idGenerator

	auditDelay time.Duration
	pageSize   uint64

	logger *logger.Logger
}

// NewShipmentService constructs a ShipmentService. Coordinates are resolved
// with geocoder and audit entries are queued through audit with the
// configured delay.
func NewShipmentService(
	shipmentRepository store.ShipmentRepository,
	geocoder adapter.Geocoder,
	audit AuditService,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) ShipmentService {
	return &shipmentService{
		shipmentRepository: shipmentRepository,
		geocoder:           geocoder,
		audit:              audit,
		trackingNumbers:    utils.NewTrackingNumberGenerator(),
		auditDelay:         cfg.Workers.AuditDelay,
		pageSize:           cfg.App.PageSize,
		logger:             logger,
	}
}

// CreateShipment geocodes both addresses, assigns a fresh tracking number
// and stores the shipment as pending.
//
// Returns ErrCoordinatesUnavailable without storing anything when neither
// address resolves. When only one side resolves the shipment is stored with
// null coordinates on the other side. A "Shipment created" audit entry is
// queued after the shipment is stored.
func (s *shipmentService) CreateShipment(ctx context.Context, req models.CreateShipmentRequest, actor models.Actor) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	origin, destination := s.resolveAddresses(ctx, req.OriginAddress, req.DestinationAddress)
	if !origin.Resolved() && !destination.Resolved() {
		log.Warn().
			Str("origin_outcome", string(origin.Outcome)).
			Str("destination_outcome", string(destination.Outcome)).
			Msg("neither address could be geocoded")
		return models.Shipment{}, ErrCoordinatesUnavailable
	}

	shipment := models.Shipment{
		SenderName:         strings.TrimSpace(req.SenderName),
		ReceiverName:       strings.TrimSpace(req.ReceiverName),
		OriginAddress:      strings.TrimSpace(req.OriginAddress),
		DestinationAddress: strings.TrimSpace(req.DestinationAddress),
		Status:             models.StatusPending,
		CreatedByID:        actor.User.UserID,
	}
	shipment.SetOrigin(origin)
	shipment.SetDestination(destination)

	created, err := s.persist(ctx, shipment)
	if err != nil {
		log.Err(err).Str("func", "*shipmentService.CreateShipment").Int64("user_id", actor.User.UserID).Msg("shipment was not stored")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrShipmentNotCreated, err)
	}
	owner := actor.User
	created.CreatedBy = &owner

	s.record(ctx, models.AuditEntry{
		Action:    ActionShipmentCreated,
		UserID:    actor.User.UserID,
		IPAddress: actor.IPAddress,
		Metadata:  created,
	})

	return created, nil
}

// resolveAddresses looks both addresses up concurrently. The geocoder never
// fails, so the group only joins the two lookups.
func (s *shipmentService) resolveAddresses(ctx context.Context, originAddress, destinationAddress string) (models.Geolocation, models.Geolocation) {
	var origin, destination models.Geolocation

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		origin = s.geocoder.Resolve(gctx, originAddress)
		return nil
	})
	g.Go(func() error {
		destination = s.geocoder.Resolve(gctx, destinationAddress)
		return nil
	})
	_ = g.Wait()

	metrics.ObserveGeocode(origin.Outcome)
	metrics.ObserveGeocode(destination.Outcome)

	return origin, destination
}

// persist stores shipment under a new tracking number, drawing another one
// when the number is already taken.
func (s *shipmentService) persist(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	var err error
	for attempt := 1; attempt <= maxTrackingNumberAttempts; attempt++ {
		shipment.TrackingNumber = s.trackingNumbers.Generate()

		var created models.Shipment
		created, err = s.shipmentRepository.CreateShipment(ctx, shipment)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, store.ErrTrackingNumberTaken) {
			return models.Shipment{}, err
		}

		logger.FromContext(ctx).Warn().Int("attempt", attempt).Msg("tracking number collision")
	}

	return models.Shipment{}, err
}

// UpdateShipmentStatus sets the status of an existing shipment. Any known
// status may be set regardless of the current one.
//
// Returns ErrShipmentNotFound, with nothing stored or audited, when the
// shipment does not exist.
func (s *shipmentService) UpdateShipmentStatus(ctx context.Context, shipmentID int64, req models.UpdateShipmentStatusRequest, actor models.Actor) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	if _, err := s.shipmentRepository.FindShipmentByID(ctx, shipmentID); err != nil {
		if errors.Is(err, store.ErrShipmentNotFound) {
			return models.Shipment{}, ErrShipmentNotFound
		}
		log.Err(err).Str("func", "*shipmentService.UpdateShipmentStatus").Int64("shipment_id", shipmentID).Msg("shipment lookup failed")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrShipmentStatusNotUpdated, err)
	}

	updated, err := s.shipmentRepository.UpdateShipmentStatus(ctx, shipmentID, req.Status)
	if errors.Is(err, store.ErrShipmentNotFound) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*shipmentService.UpdateShipmentStatus").Int64("shipment_id", shipmentID).Msg("shipment status was not stored")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrShipmentStatusNotUpdated, err)
	}

	s.record(ctx, models.AuditEntry{
		Action:    ActionShipmentStatusUpdated,
		UserID:    actor.User.UserID,
		IPAddress: actor.IPAddress,
		Metadata: map[string]string{
			"status":    string(updated.Status),
			"update_by": actor.User.Name,
		},
	})

	return updated, nil
}

// GetShipments lists shipments in scope, newest first. An empty page is
// reported as ErrNoRecords.
func (s *shipmentService) GetShipments(ctx context.Context, query models.ListQuery, scope models.ShipmentScope) (models.ShipmentPage, error) {
	filter := models.ShipmentFilter{
		Status:    query.Status,
		Page:      max(query.Page, 1),
		Limit:     query.Limit,
		WithOwner: scope.All,
	}
	if !scope.All {
		filter.OwnerID = scope.OwnerID
	}
	if filter.Limit == 0 {
		filter.Limit = s.pageSize
	}

	shipments, total, err := s.shipmentRepository.ListShipments(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shipmentService.GetShipments").Msg("error listing shipments")
		return models.ShipmentPage{}, fmt.Errorf("%w: %w", ErrShipmentsNotRetrieved, err)
	}
	if len(shipments) == 0 {
		return models.ShipmentPage{}, ErrNoRecords
	}

	return models.ShipmentPage{
		Shipments:  shipments,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// TrackShipment finds a shipment by its public tracking number.
func (s *shipmentService) TrackShipment(ctx context.Context, trackingNumber string) (models.Shipment, error) {
	shipment, err := s.shipmentRepository.FindShipmentByTrackingNumber(ctx, strings.TrimSpace(trackingNumber))
	if errors.Is(err, store.ErrShipmentNotFound) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shipmentService.TrackShipment").Msg("shipment lookup failed")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrShipmentsNotRetrieved, err)
	}

	return shipment, nil
}

// record queues an audit entry. A failure is logged and never surfaces to
// the caller, the shipment is already stored.
func (s *shipmentService) record(ctx context.Context, entry models.AuditEntry) {
	if err := s.audit.Record(ctx, entry, s.auditDelay); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shipmentService.record").Str("action", entry.Action).Msg("audit entry was not queued")
	}
}
