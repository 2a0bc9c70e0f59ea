package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/padezh/internal/service/declension"
)

// statsProvider exposes resolver counters for the health report.
type statsProvider interface {
	Stats() declension.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	resolver statsProvider
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(resolver statsProvider, version string) *HealthHandler {
	return &HealthHandler{resolver: resolver, version: version}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Resolver  *declension.Stats `json:"resolver,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version and resolver cache usage. The resolver never
// depends on an upstream being reachable, so the status is always ok.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.resolver.Stats()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Resolver:  &stats,
		Timestamp: time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
