package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-countries/internal/utils"
	"github.com/MKhiriev/go-countries/models"
)

// regionQueryParam may be repeated: ?region=Europe&region=Asia.
const regionQueryParam = "region"

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	filter := models.CountryFilter{Regions: r.URL.Query()[regionQueryParam]}

	countries, err := h.services.CountryService.ListCountries(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listCountries")
		return
	}

	if countries == nil {
		countries = []models.Country{}
	}

	utils.WriteJSON(w, countries, http.StatusOK)
}

func (h *Handler) getCountry(w http.ResponseWriter, r *http.Request) {
	alpha2 := chi.URLParam(r, "alpha2")

	country, err := h.services.CountryService.GetCountry(r.Context(), alpha2)
	if err != nil {
		writeError(w, r, err, "*Handler.getCountry")
		return
	}

	utils.WriteJSON(w, country, http.StatusOK)
}
