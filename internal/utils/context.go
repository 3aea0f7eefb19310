// Package utils holds small helpers shared by the transport and service
// layers: request context keys, password hashing, JSON responses, the
// outbound HTTP client, JWT handling and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/models"
)

// contextKey keeps keys of this package from colliding with string keys set
// elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// Keys set by the HTTP auth middleware for authenticated requests.
var (
	UserIDCtxKey = contextKey("userID")
	TokenCtxKey  = contextKey("token")
	UserCtxKey   = contextKey("user")
)

// GetUserIDFromContext returns the authenticated user id. ok is false when
// the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	return valueFromContext[int64](ctx, UserIDCtxKey)
}

// GetTokenFromContext returns the access token the request was
// authenticated with.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	return valueFromContext[models.Token](ctx, TokenCtxKey)
}

// GetUserFromContext returns the authenticated user.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	return valueFromContext[models.User](ctx, UserCtxKey)
}

func valueFromContext[T any](ctx context.Context, key contextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}
