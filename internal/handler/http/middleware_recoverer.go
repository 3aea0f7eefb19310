// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
)

// withRecoverer turns a panic in any downstream handler into a logged 500
// envelope. [http.ErrAbortHandler] is re-raised so the server can abort the
// connection as usual.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecoverer").
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			h.fail(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec), failure{})
		}()

		next.ServeHTTP(w, r)
	})
}
