package http

import (
	"net/http"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/utils"
	"github.com/MKhiriev/go-countries/models"
)

// health is the readiness probe: 200 when the storage answers a ping,
// 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status: statusOK,
		Checks: map[string]string{"storage": statusOK},
	}
	status := http.StatusOK

	if err := h.services.HealthService.CheckStorage(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.health").Msg("storage check failed")
		response.Status = statusUnavailable
		response.Checks["storage"] = statusUnavailable
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, response, status)
}
