package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
)

func (h *Handler) getSystemLogs(w http.ResponseWriter, r *http.Request) {
	f := failure{unexpected: app.MsgGetSystemLogsFailed, noRecords: app.MsgNoSystemLogs}

	query, err := validators.ParseListQuery(r.URL.Query(), h.pageSize)
	if err != nil {
		h.fail(w, r, err, f)
		return
	}

	page, err := h.services.AuditService.GetSystemLogs(r.Context(), query)
	if err != nil {
		h.fail(w, r, err, f)
		return
	}

	respond(w, r, http.StatusOK, app.MsgSystemLogs, page)
}
