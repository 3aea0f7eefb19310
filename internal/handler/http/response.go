// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// failure describes how an endpoint words failures that have no
// dedicated client message.
type failure struct {
	// unexpected is returned in production for 5xx responses.
	unexpected string
	// noRecords replaces the message of service.ErrNoRecords.
	noRecords string
}

// respond writes a success envelope.
func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.respond").Msg("failed to write response")
	}
}

// respondError writes a failure envelope with the given status and message.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.Response{Success: false, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.respondError").Msg("failed to write error response")
	}
}

// fail converts err into a failure envelope. Known errors keep their status
// and client message; anything else becomes a 500 whose text depends on the
// environment.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, f failure) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	if f.noRecords != "" && status == http.StatusBadRequest && message == "" {
		message = f.noRecords
	}

	if status >= http.StatusInternalServerError || message == "" {
		log.Err(err).Int("status", status).Msg("request failed")

		status = http.StatusInternalServerError
		message = h.unexpectedMessage(err, f)
		respondError(w, r, status, message)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	respondError(w, r, status, message)
}

func (h *Handler) unexpectedMessage(err error, f failure) string {
	if !h.production {
		return err.Error()
	}
	if f.unexpected != "" {
		return f.unexpected
	}
	return app.MsgUnexpectedError
}
