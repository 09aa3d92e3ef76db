package handlers

import (
	"net/http"
	"time"

	"server/internal/health"
)

type healthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Services  map[string]health.Status `json:"services"`
	Version   string                   `json:"version"`
	Uptime    float64                  `json:"uptime"`
}

// Health probes the registered dependencies and reports their real status.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	services := a.Prober.Probe(r.Context())
	status := "healthy"
	code := http.StatusOK
	if !health.Healthy(services) {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	a.json(w, code, healthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
		Version:   a.Version,
		Uptime:    time.Since(a.startedAt).Seconds(),
	})
}
