package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-shipment-tracker"

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to third-party APIs. It embeds *resty.Client to expose all
// of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that identifies itself with the
// service User-Agent and asks for JSON responses.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://api.opencagedata.com/geocode/v1/json")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
