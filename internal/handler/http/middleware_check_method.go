// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-countries/internal/app"
	"github.com/MKhiriev/go-countries/internal/utils"
)

// notFound is registered as the router's NotFound handler so that unknown
// paths get the same {"message": ...} body as every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. It is
// called when the path matches a route but the method does not; the API is
// read-only, so in practice this answers every non-GET request to a known
// path.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
