package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every repository and store used by the service layer.
type Storages struct {
	UserRepository      UserRepository
	TokenRepository     TokenRepository
	ShipmentRepository  ShipmentRepository
	SystemLogRepository SystemLogRepository
	AuditJobRepository  AuditJobRepository
	RateLimitStore      RateLimitStore
	GeocodeCache        GeocodeCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and, when an
// address is configured, connects to Redis. Without Redis the rate limit
// store and the geocode cache are no-ops.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:      NewUserRepository(db, log),
		TokenRepository:     NewTokenRepository(db, log),
		ShipmentRepository:  NewShipmentRepository(db, log),
		SystemLogRepository: NewSystemLogRepository(db, log),
		AuditJobRepository:  NewAuditJobRepository(db, log),
		RateLimitStore:      NewNopRateLimitStore(),
		GeocodeCache:        NewNopGeocodeCache(),
		db:                  db,
	}

	if cfg.Redis.Address == "" {
		log.Warn().Str("func", "NewStorages").Msg("redis address is empty: rate limiting and geocode caching are disabled")
		return storages, nil
	}

	client, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storages.redis = client
	storages.RateLimitStore = NewRedisRateLimitStore(client)
	storages.GeocodeCache = NewRedisGeocodeCache(client)

	return storages, nil
}

// IsRetryable reports whether a storage error is transient.
func (s *Storages) IsRetryable(err error) bool {
	if s.db == nil {
		return false
	}
	return s.db.IsRetryable(err)
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error

	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}

	return errors.Join(errs...)
}

// Ping checks that the database and, when configured, Redis are reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}
