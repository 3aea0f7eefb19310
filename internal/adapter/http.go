package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

const geocodePath = "/geocode/v1/json"

type openCageGeocoder struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// geocodeResponse is the subset of the OpenCage forward geocoding response
// the resolver reads. Coordinates are decoded loosely so that numeric
// strings are accepted and anything else is reported as missing geometry.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat any `json:"lat"`
			Lng any `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
	Status *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// NewOpenCageGeocoder constructs a [Geocoder] that queries the OpenCage
// forward geocoding API at cfg.BaseURL.
//
// Every lookup is bounded by cfg.RequestTimeout. Connection-level failures
// are retried cfg.RetryCount times, cfg.RetryWait apart; HTTP error
// responses are never retried.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewOpenCageGeocoder(cfg config.Geocoder, logger *logger.Logger) (Geocoder, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait)

	logger.Debug().Str("base_url", baseURL).Msg("creating OpenCage geocoder")

	return &openCageGeocoder{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Resolve implements [Geocoder]. It issues
// GET /geocode/v1/json?q=<address>&key=<api key>&limit=1 and classifies the
// answer:
//   - [models.GeocodeResolved] when the body carries a success status code
//     and numeric coordinates for the first result;
//   - [models.GeocodeFailed] when the provider answered with an error status
//     or without usable geometry;
//   - [models.GeocodeTransportFailure] when the provider could not be reached.
func (g *openCageGeocoder) Resolve(ctx context.Context, address string) models.Geolocation {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     address,
			"key":   g.apiKey,
			"limit": "1",
		}).
		Get(geocodePath)
	if err != nil {
		log.Err(err).
			Str("func", "*openCageGeocoder.Resolve").
			Str("address", address).
			Msg("geocoder unreachable")
		return models.Unresolved(models.GeocodeTransportFailure)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "*openCageGeocoder.Resolve").
			Str("address", address).
			Int("http_status", resp.StatusCode()).
			Msg("geocoder answered with an error status")
		return models.Unresolved(models.GeocodeFailed)
	}

	geo, err := parseGeocodeResponse(resp.Body())
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*openCageGeocoder.Resolve").
			Str("address", address).
			Int("http_status", resp.StatusCode()).
			Msg("geocoder could not resolve address")
		return models.Unresolved(models.GeocodeFailed)
	}

	return geo
}

// parseGeocodeResponse extracts the first result's coordinates from body.
func parseGeocodeResponse(body []byte) (models.Geolocation, error) {
	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return models.Geolocation{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if parsed.Status == nil {
		return models.Geolocation{}, fmt.Errorf("%w: missing status", ErrMalformedResponse)
	}
	if err := mapStatusCode(parsed.Status.Code, parsed.Status.Message); err != nil {
		return models.Geolocation{}, err
	}

	if len(parsed.Results) == 0 {
		return models.Geolocation{}, fmt.Errorf("%w: no results", ErrNoGeometry)
	}

	lat, ok := numeric(parsed.Results[0].Geometry.Lat)
	if !ok {
		return models.Geolocation{}, fmt.Errorf("%w: latitude", ErrNoGeometry)
	}
	lng, ok := numeric(parsed.Results[0].Geometry.Lng)
	if !ok {
		return models.Geolocation{}, fmt.Errorf("%w: longitude", ErrNoGeometry)
	}

	return models.Geolocation{Latitude: lat, Longitude: lng, Outcome: models.GeocodeResolved}, nil
}

func numeric(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
