package http

import (
	"time"

	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/service"
	"github.com/MKhiriev/go-countries/internal/utils"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	requestTimeout     time.Duration
	traceIDs           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		requestTimeout:     cfg.RequestTimeout,
		traceIDs:           utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
