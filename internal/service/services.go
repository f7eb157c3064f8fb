package service

import (
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/store"
	"github.com/MKhiriev/go-countries/internal/validators"
	"github.com/MKhiriev/go-countries/models"
)

type Services struct {
	CountryService CountryService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the service layer on top of storages. The country
// service is exposed only through its validating wrapper.
func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	countryValidator := validators.NewCountryValidator(storages.CountryRepository)

	return &Services{
		CountryService: NewCountryValidationService(countryValidator).
			Wrap(NewCountryService(storages.CountryRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
		HealthService:  NewHealthService(storages, logger),
	}
}
