// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/jackc/pgerrcode"
)

// shipmentRepository is the PostgreSQL-backed implementation of
// [ShipmentRepository]. Listing queries are built with squirrel (see
// sql_queries.go); single-row statements are static.
type shipmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewShipmentRepository constructs a [ShipmentRepository] backed by db.
func NewShipmentRepository(db *DB, logger *logger.Logger) ShipmentRepository {
	logger.Debug().Msg("creating shipment repository")
	return &shipmentRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateShipment inserts shipment and returns it with ID, CreatedAt and
// UpdatedAt filled in. A tracking number collision yields
// [ErrTrackingNumberTaken]; a missing owner yields [ErrNoUserWasFound].
func (s *shipmentRepository) CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	err := s.DB.QueryRowContext(ctx, createShipment,
		shipment.TrackingNumber,
		shipment.SenderName,
		shipment.ReceiverName,
		shipment.OriginAddress,
		shipment.DestinationAddress,
		shipment.OriginLatitude,
		shipment.OriginLongitude,
		shipment.DestinationLatitude,
		shipment.DestinationLongitude,
		string(shipment.Status),
		shipment.CreatedByID,
	).Scan(&shipment.ID, &shipment.CreatedAt, &shipment.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*shipmentRepository.CreateShipment").
			Int64("user_id", shipment.CreatedByID).
			Msg("failed to insert shipment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Shipment{}, ErrTrackingNumberTaken
		case pgerrcode.ForeignKeyViolation:
			return models.Shipment{}, ErrNoUserWasFound
		default:
			return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return shipment, nil
}

// FindShipmentByID returns the shipment with shipmentID or
// [ErrShipmentNotFound].
func (s *shipmentRepository) FindShipmentByID(ctx context.Context, shipmentID int64) (models.Shipment, error) {
	return s.findShipment(ctx, "id", shipmentID)
}

// FindShipmentByTrackingNumber returns the shipment carrying trackingNumber
// or [ErrShipmentNotFound].
func (s *shipmentRepository) FindShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (models.Shipment, error) {
	return s.findShipment(ctx, "tracking_number", trackingNumber)
}

func (s *shipmentRepository) findShipment(ctx context.Context, column string, value any) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindShipmentQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.findShipment").Msg("failed to build query")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	shipment, err := scanShipment(s.DB.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.findShipment").Str("column", column).Msg("failed to find shipment")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return shipment, nil
}

// UpdateShipmentStatus sets the status of shipmentID and returns the
// updated row. Updating a missing or soft-deleted shipment yields
// [ErrShipmentNotFound].
func (s *shipmentRepository) UpdateShipmentStatus(ctx context.Context, shipmentID int64, status models.ShipmentStatus) (models.Shipment, error) {
	shipment, err := scanShipment(s.DB.QueryRowContext(ctx, updateShipmentStatus, string(status), shipmentID), false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*shipmentRepository.UpdateShipmentStatus").
			Int64("shipment_id", shipmentID).
			Str("status", status.String()).
			Msg("failed to update shipment status")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return shipment, nil
}

// ListShipments returns one page of shipments matching filter together
// with the total number of matching shipments.
func (s *shipmentRepository) ListShipments(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, uint64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountShipmentsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total uint64
	if err = s.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Int64("owner_id", filter.OwnerID).Msg("failed to count shipments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 {
		return []models.Shipment{}, 0, nil
	}

	query, args, err := buildListShipmentsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Int64("owner_id", filter.OwnerID).Msg("failed to list shipments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shipments := make([]models.Shipment, 0, filter.Limit)
	for rows.Next() {
		shipment, scanErr := scanShipment(rows, filter.WithOwner)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*shipmentRepository.ListShipments").Msg("failed to scan shipment row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shipments, total, nil
}

// scanShipment reads the columns of shipmentColumns, followed by
// ownerColumns when withOwner is set.
func scanShipment(row rowScanner, withOwner bool) (models.Shipment, error) {
	var shipment models.Shipment

	dest := []any{
		&shipment.ID,
		&shipment.TrackingNumber,
		&shipment.SenderName,
		&shipment.ReceiverName,
		&shipment.OriginAddress,
		&shipment.DestinationAddress,
		&shipment.OriginLatitude,
		&shipment.OriginLongitude,
		&shipment.DestinationLatitude,
		&shipment.DestinationLongitude,
		&shipment.Status,
		&shipment.CreatedByID,
		&shipment.CreatedAt,
		&shipment.UpdatedAt,
	}

	var owner models.User
	if withOwner {
		dest = append(dest,
			&owner.UserID,
			&owner.Name,
			&owner.Email,
			&owner.Role,
			&owner.LastLoginAt,
			&owner.CreatedAt,
		)
	}

	if err := row.Scan(dest...); err != nil {
		return models.Shipment{}, err
	}

	if withOwner {
		shipment.CreatedBy = &owner
	}

	return shipment, nil
}
