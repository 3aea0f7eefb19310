package http

import (
	"net/http"

	"github.com/MKhiriev/go-shipment-tracker/internal/app"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	respond(w, r, http.StatusOK, app.MsgApplicationVersion, models.VersionResponse{
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   buildInfo.BuildDate(),
		BuildCommit: buildInfo.BuildCommit(),
	})
}
