package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// actorFromRequest returns the authenticated user and client address of r.
func actorFromRequest(r *http.Request) (models.Actor, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.Actor{}, service.ErrTokenIsExpiredOrInvalid
	}

	return models.Actor{User: user, IPAddress: utils.ClientIP(r)}, nil
}
