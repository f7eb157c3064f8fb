package http

import (
	"net/http"

	"github.com/MKhiriev/go-countries/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo.Response(), http.StatusOK)
}
