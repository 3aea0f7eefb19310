package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// DeleteUser removes the user row. A user referenced by shipments or
	// system logs cannot be deleted.
	DeleteUser(ctx context.Context, userID int64) error
}

// TokenRepository persists issued access tokens so they can be revoked
// before they expire.
type TokenRepository interface {
	// ReplaceUserTokens atomically revokes every token of token.UserID,
	// stores token as the only valid one and stamps the user's last login.
	ReplaceUserTokens(ctx context.Context, token models.Token, loggedInAt time.Time) error
	FindToken(ctx context.Context, tokenID string) (models.Token, error)
	RevokeUserTokens(ctx context.Context, userID int64) (int64, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// ShipmentRepository persists shipments in the "shipments" table.
// Soft-deleted shipments are invisible to every method.
type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error)
	FindShipmentByID(ctx context.Context, shipmentID int64) (models.Shipment, error)
	FindShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, shipmentID int64, status models.ShipmentStatus) (models.Shipment, error)
	ListShipments(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, uint64, error)
}

// SystemLogRepository reads the append-only "system_logs" table.
type SystemLogRepository interface {
	ListSystemLogs(ctx context.Context, filter models.LogFilter) ([]models.SystemLog, uint64, error)
}

// AuditJobRepository is the durable queue of pending audit entries.
type AuditJobRepository interface {
	EnqueueAuditJob(ctx context.Context, job models.AuditJob) (int64, error)
	FindDueAuditJobs(ctx context.Context, now time.Time, limit uint64) ([]models.AuditJob, error)
	// DeliverAuditJob writes the job into system_logs and removes it from
	// the queue in one transaction.
	DeliverAuditJob(ctx context.Context, job models.AuditJob) (models.SystemLog, error)
	RescheduleAuditJob(ctx context.Context, jobID int64, notBefore time.Time, lastErr string) error
	DeleteAuditJob(ctx context.Context, jobID int64) error
}

// RateLimitStore counts requests per key inside fixed windows.
type RateLimitStore interface {
	// Hit increments the counter of key and returns the new count together
	// with the time left until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// GeocodeCache caches resolved coordinates by address.
type GeocodeCache interface {
	GetGeolocation(ctx context.Context, address string) (models.Geolocation, bool, error)
	SetGeolocation(ctx context.Context, address string, geo models.Geolocation, ttl time.Duration) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
