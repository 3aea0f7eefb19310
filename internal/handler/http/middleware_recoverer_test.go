package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestWithRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	t.Run("production hides the panic", func(t *testing.T) {
		h := newProductionHandler(t, service.Services{})

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			h.withRecoverer(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/version", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.False(t, env.Success)
		assert.Equal(t, app.MsgUnexpectedError, env.Message)
	})

	t.Run("development shows the panic value", func(t *testing.T) {
		h := newTestHandler(t, service.Services{})

		rr := httptest.NewRecorder()
		h.withRecoverer(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/version", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Message, "nil map write")
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		h := newTestHandler(t, service.Services{})
		aborting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.withRecoverer(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
