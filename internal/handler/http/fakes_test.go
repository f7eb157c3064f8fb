package http

import (
	"context"
	"slices"
	"sort"
	"testing"

	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/service"
	"github.com/MKhiriev/go-countries/internal/store"
	"github.com/MKhiriev/go-countries/internal/validators"
	"github.com/MKhiriev/go-countries/models"
)

// ─────────────────────────────────────────────
// in-memory repository
// ─────────────────────────────────────────────

// memCountryRepository is a store.CountryRepository over a fixed slice.
type memCountryRepository struct {
	countries []models.Country
}

func (m *memCountryRepository) GetRegions(_ context.Context) ([]string, error) {
	regions := make([]string, 0)
	for _, c := range m.countries {
		if !slices.Contains(regions, c.Region) {
			regions = append(regions, c.Region)
		}
	}
	sort.Strings(regions)
	return regions, nil
}

func (m *memCountryRepository) GetCountries(_ context.Context, filter models.CountryFilter) ([]models.Country, error) {
	result := make([]models.Country, 0)
	for _, c := range m.countries {
		if filter.IsEmpty() || slices.Contains(filter.Regions, c.Region) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Alpha2 < result[j].Alpha2 })
	return result, nil
}

func (m *memCountryRepository) GetCountryByAlpha2(_ context.Context, alpha2 string) (models.Country, error) {
	for _, c := range m.countries {
		if c.Alpha2 == alpha2 {
			return c, nil
		}
	}
	return models.Country{}, store.ErrCountryNotFound
}

var (
	germany = models.Country{Name: "Germany", Alpha2: "DE", Alpha3: "DEU", Region: "Europe"}
	japan   = models.Country{Name: "Japan", Alpha2: "JP", Alpha3: "JPN", Region: "Asia"}
	kenya   = models.Country{Name: "Kenya", Alpha2: "KE", Alpha3: "KEN", Region: "Africa"}
	france  = models.Country{Name: "France", Alpha2: "FR", Alpha3: "FRA", Region: "Europe"}
)

// seededCountries is deliberately out of alpha2 order.
func seededCountries() []models.Country {
	return []models.Country{japan, germany, kenya, france}
}

// ─────────────────────────────────────────────
// service fakes
// ─────────────────────────────────────────────

type fakeCountryService struct {
	listFn func(ctx context.Context, filter models.CountryFilter) ([]models.Country, error)
	getFn  func(ctx context.Context, alpha2 string) (models.Country, error)
}

func (f *fakeCountryService) ListCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeCountryService) GetCountry(ctx context.Context, alpha2 string) (models.Country, error) {
	return f.getFn(ctx, alpha2)
}

type fakeAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppBuildInfo(_ context.Context) models.AppBuildInfo {
	return f.buildInfo
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) CheckStorage(_ context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// handler constructors
// ─────────────────────────────────────────────

var testServerConfig = config.Server{CORSAllowedOrigins: []string{"*"}}

// newTestHandler builds a Handler with no services, for middleware tests.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, testServerConfig, logger.Nop())
}

// newTestServices wires the real validating country service on top of an
// in-memory repository, plus fakes for everything else.
func newTestServices(t *testing.T, countries []models.Country) *service.Services {
	t.Helper()

	repo := &memCountryRepository{countries: countries}
	countryService := service.NewCountryValidationService(validators.NewCountryValidator(repo)).
		Wrap(service.NewCountryService(repo, logger.Nop()))

	return &service.Services{
		CountryService: countryService,
		AppInfoService: &fakeAppInfoService{buildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")},
		HealthService:  &fakeHealthService{},
	}
}

func newTestRouter(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(newTestServices(t, seededCountries()), testServerConfig, logger.Nop())
}
