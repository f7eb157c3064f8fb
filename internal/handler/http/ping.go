package http

import (
	"net/http"

	"github.com/MKhiriev/go-countries/internal/utils"
	"github.com/MKhiriev/go-countries/models"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// ping is the liveness probe. It never touches the storage.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK)
}
