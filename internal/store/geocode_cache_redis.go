package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "geocode:"

// redisGeocodeCache implements [GeocodeCache]. Only resolved locations are
// worth caching; callers decide what to store.
type redisGeocodeCache struct {
	client *redis.Client
}

// NewRedisGeocodeCache constructs a [GeocodeCache] on top of client.
func NewRedisGeocodeCache(client *redis.Client) GeocodeCache {
	return &redisGeocodeCache{client: client}
}

func (c *redisGeocodeCache) GetGeolocation(ctx context.Context, address string) (models.Geolocation, bool, error) {
	value, err := c.client.Get(ctx, geocodeKey(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Geolocation{}, false, nil
	}
	if err != nil {
		return models.Geolocation{}, false, fmt.Errorf("geocode cache get: %w", err)
	}

	var geo models.Geolocation
	if err = json.Unmarshal(value, &geo); err != nil {
		return models.Geolocation{}, false, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return geo, true, nil
}

func (c *redisGeocodeCache) SetGeolocation(ctx context.Context, address string, geo models.Geolocation, ttl time.Duration) error {
	value, err := json.Marshal(geo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	if err = c.client.Set(ctx, geocodeKey(address), value, ttl).Err(); err != nil {
		return fmt.Errorf("geocode cache set: %w", err)
	}

	return nil
}

// geocodeKey normalizes address so that case and surrounding or repeated
// whitespace do not produce separate cache entries.
func geocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// nopGeocodeCache never hits. It is used when Redis is not configured.
type nopGeocodeCache struct{}

// NewNopGeocodeCache returns a [GeocodeCache] that stores nothing.
func NewNopGeocodeCache() GeocodeCache {
	return nopGeocodeCache{}
}

func (nopGeocodeCache) GetGeolocation(context.Context, string) (models.Geolocation, bool, error) {
	return models.Geolocation{}, false, nil
}

func (nopGeocodeCache) SetGeolocation(context.Context, string, models.Geolocation, time.Duration) error {
	return nil
}
