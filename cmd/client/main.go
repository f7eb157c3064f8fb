package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-countries/internal/adapter"
	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/utils"
)

func main() {
	log := logger.NewLogger("go-countries-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	countries, err := adapter.NewHTTPCountriesAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create countries adapter")
	}

	traceID := utils.NewUUIDGenerator().Generate()
	ctx := utils.WithTraceID(context.Background(), traceID)

	if err = run(ctx, countries, args, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("trace_id", traceID).Msg("command failed")
	}
}
