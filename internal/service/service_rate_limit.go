package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// rateLimitService applies a fixed-window budget per client key.
type rateLimitService struct {
	store  store.RateLimitStore
	limit  int64
	window time.Duration

	logger *logger.Logger
}

// NewRateLimitService constructs a RateLimitService. A non-positive limit
// disables limiting.
func NewRateLimitService(store store.RateLimitStore, cfg config.Server, logger *logger.Logger) RateLimitService {
	return &rateLimitService{
		store:  store,
		limit:  cfg.RateLimit,
		window: cfg.RateLimitWindow,
		logger: logger,
	}
}

// Allow counts one request of key. When the store is unavailable the request
// is let through.
func (s *rateLimitService) Allow(ctx context.Context, key string) (models.RateLimit, error) {
	if s.limit <= 0 || s.window <= 0 {
		return models.RateLimit{Allowed: true}, nil
	}

	count, resetIn, err := s.store.Hit(ctx, key, s.window)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*rateLimitService.Allow").Msg("rate limit store unavailable, request allowed")
		return models.RateLimit{Allowed: true, Limit: s.limit, Remaining: s.limit}, nil
	}

	limit := models.RateLimit{
		Allowed:   count <= s.limit,
		Limit:     s.limit,
		Remaining: max(s.limit-count, 0),
		ResetIn:   resetIn,
	}
	if !limit.Allowed {
		return limit, ErrRateLimitExceeded
	}

	return limit, nil
}
