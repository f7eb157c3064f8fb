package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-countries/internal/app"
	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/service"
	"github.com/MKhiriev/go-countries/internal/store"
	"github.com/MKhiriev/go-countries/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRegion:      http.StatusBadRequest,
	service.ErrMalformedAlpha2:    http.StatusBadRequest,
	service.ErrStorageUnavailable: http.StatusServiceUnavailable,

	store.ErrCountryNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message of each classified error.
// Anything missing here is reported as a generic internal error.
var errorMessageMap = map[error]string{
	service.ErrInvalidRegion:      app.MsgInvalidRegion,
	service.ErrMalformedAlpha2:    app.MsgInvalidAlpha2,
	service.ErrStorageUnavailable: app.MsgServiceUnavailable,

	store.ErrCountryNotFound: app.MsgCountryNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
// Client errors are logged at debug level, everything else as an error.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	message := app.MsgInternalServerError
	if status != http.StatusInternalServerError {
		message = messageFromError(err)
	}

	log := logger.FromRequest(r)
	var event *zerolog.Event
	if status < http.StatusInternalServerError {
		event = log.Debug().Err(err)
	} else {
		event = log.Error().Err(err)
	}
	event.Str("func", funcName).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}
