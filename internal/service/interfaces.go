// Package service holds the business logic of the shipment tracker: account
// and token lifecycle, the shipment lifecycle, the audit trail and request
// rate limiting.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
)

// AuthService registers users and issues, checks and revokes their access
// tokens. A user holds at most one valid token at a time.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest, clientIP string) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest, clientIP string) (models.AuthResponse, error)
	Logout(ctx context.Context, userID int64) error
	// Authenticate checks a bearer token and loads its owner.
	Authenticate(ctx context.Context, tokenString string) (models.Token, models.User, error)
	PruneExpiredTokens(ctx context.Context) (int64, error)
}

// ShipmentService creates shipments, changes their status and lists them.
type ShipmentService interface {
	CreateShipment(ctx context.Context, req models.CreateShipmentRequest, actor models.Actor) (models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, shipmentID int64, req models.UpdateShipmentStatusRequest, actor models.Actor) (models.Shipment, error)
	GetShipments(ctx context.Context, query models.ListQuery, scope models.ShipmentScope) (models.ShipmentPage, error)
	TrackShipment(ctx context.Context, trackingNumber string) (models.Shipment, error)
}

// AuditService queues audit entries for delayed delivery into the system log
// and delivers the ones that are due.
type AuditService interface {
	Record(ctx context.Context, entry models.AuditEntry, delay time.Duration) error
	DispatchDue(ctx context.Context) (models.DispatchReport, error)
	GetSystemLogs(ctx context.Context, query models.ListQuery) (models.SystemLogPage, error)
}

// RateLimitService counts requests of a client against its budget.
type RateLimitService interface {
	Allow(ctx context.Context, key string) (models.RateLimit, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating requests.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ShipmentServiceWrapper defines middleware composition for ShipmentService.
type ShipmentServiceWrapper interface {
	Wrap(ShipmentService) ShipmentService
}
