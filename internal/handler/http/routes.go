package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/metrics"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Rate limit groups. Each group has its own budget per client IP.
const (
	rateLimitGroupAuth  = "auth"
	rateLimitGroupTrack = "track"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecoverer)

	router.Handle("/metrics", metrics.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit(rateLimitGroupAuth))
			r.With(h.contentType).Post("/auth/user/register", h.register)
			r.With(h.contentType).Post("/auth/user/login", h.login)
		})
		r.With(h.rateLimit(rateLimitGroupTrack)).Get("/track/{trackingNumber}", h.trackShipment)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/user/logout", h.logout)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAbility(models.AbilityUserAccess))
				r.With(h.contentType).Post("/shipment/create", h.createShipment)
				r.Get("/shipment/get", h.getUserShipments)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireAbility(models.AbilityAdminAccess))
				r.Get("/shipment/get", h.getAllShipments)
				r.With(h.contentType).Patch("/shipment/{shipmentId}/update", h.updateShipmentStatus)
				r.Get("/logs/get", h.getSystemLogs)
			})
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, ErrRouteNotFound, failure{})
}
