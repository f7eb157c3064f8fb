package models

// StatusResponse is the body of the liveness endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx API response.
// Message is safe to show to the client; internal details are only logged.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the readiness endpoint. Checks maps a
// dependency name (e.g. "storage") to its state.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// VersionResponse exposes the build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
