package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req, utils.ClientIP(r))
	if err != nil {
		h.fail(w, r, err, failure{unexpected: app.MsgRegisterFailed})
		return
	}

	log.Debug().Int64("id", resp.User.UserID).Msg("user registered")
	respond(w, r, http.StatusCreated, app.MsgUserCreated, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err, failure{})
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req, utils.ClientIP(r))
	if err != nil {
		h.fail(w, r, err, failure{unexpected: app.MsgLoginFailed})
		return
	}

	log.Debug().Int64("id", resp.User.UserID).Msg("user successfully logged in")
	respond(w, r, http.StatusOK, app.MsgUserLoggedIn, resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.fail(w, r, service.ErrTokenIsExpiredOrInvalid, failure{})
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), userID); err != nil {
		h.fail(w, r, err, failure{unexpected: app.MsgLogoutFailed})
		return
	}

	respond(w, r, http.StatusOK, app.MsgUserLoggedOut, nil)
}
