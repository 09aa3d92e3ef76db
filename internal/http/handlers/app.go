package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"server/internal/content"
	"server/internal/health"
	"server/internal/infra"
	"server/internal/providers/genai"
)

// TextGenerator is the slice of the provider client the handlers depend on.
type TextGenerator interface {
	GenerateText(ctx context.Context, req genai.GenerateRequest) (string, error)
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Logger        infra.Logger
	Generator     TextGenerator
	Prober        *health.Prober
	Version       string
	MaxImageBytes int64
	startedAt     time.Time
}

// NewApp wires the handler container.
func NewApp(logger infra.Logger, generator TextGenerator, prober *health.Prober, version string, maxImageBytes int64) *App {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 * 1024 * 1024
	}
	return &App{
		Logger:        logger,
		Generator:     generator,
		Prober:        prober,
		Version:       version,
		MaxImageBytes: maxImageBytes,
		startedAt:     time.Now(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		a.fail(w, content.SerializationError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (a *App) fail(w http.ResponseWriter, err error) {
	var cerr *content.Error
	if errors.As(err, &cerr) {
		a.error(w, cerr.HTTPStatus(), cerr.Message)
		return
	}
	a.error(w, http.StatusInternalServerError, "internal error")
}
