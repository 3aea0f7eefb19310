package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
)

const (
	rateLimitLimitHeader     = "X-RateLimit-Limit"
	rateLimitRemainingHeader = "X-RateLimit-Remaining"
	retryAfterHeader         = "Retry-After"
)

// rateLimit throttles requests per client IP and route group. Rejected
// requests get 429 Too Many Requests and a Retry-After header.
func (h *Handler) rateLimit(group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := group + ":" + utils.ClientIP(r)

			limit, err := h.services.RateLimitService.Allow(r.Context(), key)
			if limit.Limit > 0 {
				w.Header().Set(rateLimitLimitHeader, strconv.FormatInt(limit.Limit, 10))
				w.Header().Set(rateLimitRemainingHeader, strconv.FormatInt(limit.Remaining, 10))
			}

			if err != nil {
				if limit.ResetIn > 0 {
					w.Header().Set(retryAfterHeader, strconv.Itoa(int(math.Ceil(limit.ResetIn.Seconds()))))
				}
				h.fail(w, r, err, failure{})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
