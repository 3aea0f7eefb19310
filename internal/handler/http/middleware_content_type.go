package http

import (
	"mime"
	"net/http"
)

// contentType rejects requests whose body is not declared as JSON.
func (h *Handler) contentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			h.fail(w, r, ErrUnsupportedContentType, failure{})
			return
		}

		next.ServeHTTP(w, r)
	})
}
