package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/sampleapp/internal/domain/types"
	"github.com/okian/sampleapp/pkg/metrics"
)

const statusHealthy = "healthy"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	info types.AppInfo
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(info types.AppInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// HandleHealth handles GET /health requests. The process serving the request
// is the only dependency, so it always reports healthy.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: statusHealthy, Version: h.info.Version})
}

// MetricsHandler serves the service registry in Prometheus exposition format.
func (h *HealthHandler) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
