package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/store"
)

// storagePingTimeout bounds a readiness probe so a hung database cannot
// stall the health endpoint.
const storagePingTimeout = 2 * time.Second

type healthService struct {
	storage store.Pinger
	timeout time.Duration

	logger *logger.Logger
}

func NewHealthService(storage store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		storage: storage,
		timeout: storagePingTimeout,
		logger:  logger,
	}
}

func (h *healthService) CheckStorage(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "healthService.CheckStorage").
			Dur("timeout", h.timeout).
			Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
