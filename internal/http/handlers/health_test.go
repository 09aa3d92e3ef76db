package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"server/internal/health"
	"server/internal/infra"
)

func TestHealthReportsProbedServices(t *testing.T) {
	tests := []struct {
		name       string
		probeErr   error
		wantStatus string
		wantCode   int
		wantAI     health.Status
	}{
		{
			name:       "all operational",
			wantStatus: "healthy",
			wantCode:   http.StatusOK,
			wantAI:     health.StatusOperational,
		},
		{
			name:       "backend down",
			probeErr:   errors.New("connection refused"),
			wantStatus: "unhealthy",
			wantCode:   http.StatusServiceUnavailable,
			wantAI:     health.StatusDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prober := health.NewProber(time.Second)
			prober.Register("ai", func(ctx context.Context) error {
				return tc.probeErr
			})
			app := NewApp(infra.NewLogger("test"), &fakeGenerator{}, prober, "1.0.0", 0)

			rec := httptest.NewRecorder()
			app.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			var body healthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q", body.Status, tc.wantStatus)
			}
			if body.Services["ai"] != tc.wantAI {
				t.Fatalf("services.ai = %q, want %q", body.Services["ai"], tc.wantAI)
			}
			if body.Version != "1.0.0" {
				t.Fatalf("version = %q", body.Version)
			}
			if body.Timestamp == "" {
				t.Fatal("timestamp missing")
			}
		})
	}
}
