package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

type cachedGeocoder struct {
	next  Geocoder
	cache store.GeocodeCache
	ttl   time.Duration
}

// NewCachedGeocoder wraps next with a read-through cache. Only resolved
// locations are stored, so failed lookups are retried on the next call.
// A cache error never fails the lookup.
func NewCachedGeocoder(next Geocoder, cache store.GeocodeCache, ttl time.Duration) Geocoder {
	return &cachedGeocoder{next: next, cache: cache, ttl: ttl}
}

func (c *cachedGeocoder) Resolve(ctx context.Context, address string) models.Geolocation {
	log := logger.FromContext(ctx)

	cached, found, err := c.cache.GetGeolocation(ctx, address)
	if err != nil {
		log.Warn().Err(err).Str("func", "*cachedGeocoder.Resolve").Msg("geocode cache read failed")
	}
	if found && cached.Resolved() {
		return cached
	}

	geo := c.next.Resolve(ctx, address)
	if !geo.Resolved() {
		return geo
	}

	if err = c.cache.SetGeolocation(ctx, address, geo, c.ttl); err != nil {
		log.Warn().Err(err).Str("func", "*cachedGeocoder.Resolve").Msg("geocode cache write failed")
	}

	return geo
}
