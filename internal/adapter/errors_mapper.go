package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:      ErrBadRequest,
	http.StatusUnauthorized:    ErrUnauthorized,
	http.StatusForbidden:       ErrUnauthorized,
	http.StatusPaymentRequired: ErrQuotaExceeded,
	http.StatusTooManyRequests: ErrQuotaExceeded,
}

// mapHTTPError returns nil for 2xx responses and a sentinel-wrapped error
// carrying the response body otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrProviderFailure, code, body)
	}
	return fmt.Errorf("unexpected geocoder response: http %d: %s", code, body)
}

// mapStatusCode maps the status block of a geocoder response body. Providers
// may answer HTTP 200 and still report a failure there.
func mapStatusCode(code int, message string) error {
	if code < http.StatusBadRequest {
		return nil
	}
	return fmt.Errorf("%w: status %d: %s", ErrLookupRejected, code, message)
}
