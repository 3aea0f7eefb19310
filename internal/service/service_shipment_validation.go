package service

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// ShipmentValidationService rejects malformed shipment requests before they
// reach the wrapped ShipmentService.
type ShipmentValidationService struct {
	inner     ShipmentService
	validator validators.Validator
}

func NewShipmentValidationService() ShipmentServiceWrapper {
	return &ShipmentValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ShipmentValidationService) CreateShipment(ctx context.Context, req models.CreateShipmentRequest, actor models.Actor) (models.Shipment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Shipment{}, err
	}

	return v.inner.CreateShipment(ctx, req, actor)
}

func (v *ShipmentValidationService) UpdateShipmentStatus(ctx context.Context, shipmentID int64, req models.UpdateShipmentStatusRequest, actor models.Actor) (models.Shipment, error) {
	if shipmentID < 1 {
		return models.Shipment{}, validators.NewValidationError(validators.FieldShipmentID, "The shipment id must be a positive integer.")
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Shipment{}, err
	}

	return v.inner.UpdateShipmentStatus(ctx, shipmentID, req, actor)
}

// GetShipments checks only the status filter; a zero page or limit falls
// back to the defaults of the wrapped service.
func (v *ShipmentValidationService) GetShipments(ctx context.Context, query models.ListQuery, scope models.ShipmentScope) (models.ShipmentPage, error) {
	if err := v.validator.Validate(ctx, query, validators.FieldStatus); err != nil {
		return models.ShipmentPage{}, err
	}

	return v.inner.GetShipments(ctx, query, scope)
}

func (v *ShipmentValidationService) TrackShipment(ctx context.Context, trackingNumber string) (models.Shipment, error) {
	return v.inner.TrackShipment(ctx, trackingNumber)
}

func (v *ShipmentValidationService) Wrap(wrapped ShipmentService) ShipmentService {
	v.inner = wrapped
	return v
}
