package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusUnprocessableEntity,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnsupportedContentType:     http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrRouteNotFound:              http.StatusNotFound,

	service.ErrEmailAlreadyExists:       http.StatusBadRequest,
	service.ErrUserNotCreated:           http.StatusBadRequest,
	service.ErrCoordinatesUnavailable:   http.StatusBadRequest,
	service.ErrShipmentNotCreated:       http.StatusBadRequest,
	service.ErrShipmentStatusNotUpdated: http.StatusBadRequest,
	service.ErrNoRecords:                http.StatusBadRequest,
	service.ErrUserNotFound:             http.StatusUnauthorized,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrMissingAbility:           http.StatusForbidden,
	service.ErrShipmentNotFound:         http.StatusNotFound,
	service.ErrRateLimitExceeded:        http.StatusTooManyRequests,
}

var errorMessageMap = map[error]string{
	ErrEmptyAuthorizationHeader:   app.MsgUnauthenticated,
	ErrInvalidAuthorizationHeader: app.MsgUnauthenticated,
	ErrUnsupportedContentType:     app.MsgInvalidContentType,
	ErrInvalidJSON:                app.MsgInvalidJSON,
	ErrRouteNotFound:              app.MsgRouteNotFound,

	service.ErrEmailAlreadyExists:       app.MsgEmailAlreadyExists,
	service.ErrUserNotCreated:           app.MsgUserNotCreated,
	service.ErrCoordinatesUnavailable:   app.MsgCoordinatesUnavailable,
	service.ErrShipmentNotCreated:       app.MsgShipmentNotCreated,
	service.ErrShipmentStatusNotUpdated: app.MsgShipmentNotUpdated,
	service.ErrUserNotFound:             app.MsgUserNotFound,
	service.ErrWrongPassword:            app.MsgIncorrectPassword,
	service.ErrTokenIsExpiredOrInvalid:  app.MsgUnauthenticated,
	service.ErrMissingAbility:           app.MsgMissingAbility,
	service.ErrShipmentNotFound:         app.MsgShipmentNotFound,
	service.ErrRateLimitExceeded:        app.MsgTooManyAttempts,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// errors carry their own message; unknown errors yield "".
func messageFromError(err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return ""
}
