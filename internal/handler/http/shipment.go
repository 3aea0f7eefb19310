// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, err := actorFromRequest(r)
	if err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	var req models.CreateShipmentRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	shipment, err := h.services.ShipmentService.CreateShipment(r.Context(), req, actor)
	if err != nil {
		h.fail(w, r, err, failure{unexpected: app.MsgCreateShipmentFailed})
		return
	}

	log.Debug().Int64("id", shipment.ID).Str("tracking_number", shipment.TrackingNumber).Msg("shipment created")
	respond(w, r, http.StatusCreated, app.MsgShipmentCreated, shipment)
}

// getUserShipments lists the shipments created by the authenticated user.
func (h *Handler) getUserShipments(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	h.listShipments(w, r, models.ScopeOwnedBy(actor.User.UserID), app.MsgUserShipments)
}

// getAllShipments lists every shipment together with its owner.
func (h *Handler) getAllShipments(w http.ResponseWriter, r *http.Request) {
	h.listShipments(w, r, models.ScopeAll(), app.MsgShipments)
}

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request, scope models.ShipmentScope, message string) {
	f := failure{unexpected: app.MsgGetShipmentsFailed, noRecords: app.MsgNoShipments}

	query, err := validators.ParseListQuery(r.URL.Query(), h.pageSize)
	if err != nil {
		h.fail(w, r, err, f)
		return
	}

	page, err := h.services.ShipmentService.GetShipments(r.Context(), query, scope)
	if err != nil {
		h.fail(w, r, err, f)
		return
	}

	respond(w, r, http.StatusOK, message, page)
}

func (h *Handler) updateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	shipmentID, err := validators.ParseShipmentID(chi.URLParam(r, "shipmentId"))
	if err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	var req models.UpdateShipmentStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	shipment, err := h.services.ShipmentService.UpdateShipmentStatus(r.Context(), shipmentID, req, actor)
	if err != nil {
		h.fail(w, r, err, failure{unexpected: app.MsgUpdateStatusFailed})
		return
	}

	respond(w, r, http.StatusOK, app.MsgShipmentUpdated, shipment)
}

func (h *Handler) trackShipment(w http.ResponseWriter, r *http.Request) {
	trackingNumber := chi.URLParam(r, "trackingNumber")

	shipment, err := h.services.ShipmentService.TrackShipment(r.Context(), trackingNumber)
	if err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	respond(w, r, http.StatusOK, app.MsgShipmentRecordFor+shipment.TrackingNumber, shipment)
}
