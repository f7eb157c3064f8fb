package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/utils"
	"github.com/MKhiriev/go-countries/models"
)

const traceIDHeader = "X-Trace-ID"

type httpCountriesAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCountriesAdapter constructs an HTTP/REST implementation of
// [CountriesAdapter]. It normalises the base URL from cfg.BaseURL and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error wrapping [ErrInvalidBaseURL] if cfg.BaseURL is empty or
// cannot be parsed as a URL with scheme and host.
func NewHTTPCountriesAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CountriesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpCountriesAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a request bound to ctx that forwards the trace id stored in
// ctx, if any, and decodes error bodies into [models.ErrorResponse].
func (h *httpCountriesAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	return req
}

func (h *httpCountriesAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCountriesAdapter) ListCountries(ctx context.Context, regions []string) ([]models.Country, error) {
	var countries []models.Country

	req := h.request(ctx).SetResult(&countries)
	if len(regions) > 0 {
		req.SetQueryParamsFromValues(url.Values{"region": regions})
	}

	resp, err := req.Get("/api/countries")
	if err != nil {
		return nil, fmt.Errorf("list countries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Err(err).
			Strs("regions", regions).
			Str("trace_id", resp.Header().Get(traceIDHeader)).
			Msg("list countries failed")
		return nil, err
	}

	if countries == nil {
		countries = []models.Country{}
	}

	return countries, nil
}

func (h *httpCountriesAdapter) GetCountry(ctx context.Context, alpha2 string) (models.Country, error) {
	var country models.Country

	resp, err := h.request(ctx).
		SetResult(&country).
		SetPathParam("alpha2", alpha2).
		Get("/api/countries/{alpha2}")
	if err != nil {
		return models.Country{}, fmt.Errorf("get country request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Err(err).
			Str("alpha2", alpha2).
			Str("trace_id", resp.Header().Get(traceIDHeader)).
			Msg("get country failed")
		return models.Country{}, err
	}

	return country, nil
}

func (h *httpCountriesAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	// 503 carries the same body as 200
	resp, err := h.request(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, nil
}

func (h *httpCountriesAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
