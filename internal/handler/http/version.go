package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}, http.StatusOK)
}
