package adapter

import "errors"

// Transport-level failures, keyed by the HTTP status the provider answered.
var (
	ErrUnauthorized    = errors.New("geocoder rejected the api key")
	ErrQuotaExceeded   = errors.New("geocoder quota exceeded")
	ErrBadRequest      = errors.New("geocoder rejected the query")
	ErrProviderFailure = errors.New("geocoder unavailable")
)

// Body-level failures of an otherwise successful exchange.
var (
	ErrMalformedResponse = errors.New("malformed geocoder response")
	ErrLookupRejected    = errors.New("geocoder rejected lookup")
	ErrNoGeometry        = errors.New("no usable geometry in geocoder response")
)
