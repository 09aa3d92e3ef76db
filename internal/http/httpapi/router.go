package httpapi

import (
	"net/http"

	"server/internal/content"
	"server/internal/http/handlers"
	"server/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Options carries the cross-cutting pieces the router needs beyond the
// handler container.
type Options struct {
	Limiter        *middleware.Limiter
	AllowedOrigins []string
}

// NewRouter wires every endpoint. Content routes come straight from the
// registry, so adding a kind there adds its route here.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.SecurityHeaders,
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}

	r.Get("/api/health", app.Health)

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(middleware.RateLimit(opts.Limiter))
		}
		for _, def := range content.Definitions {
			r.Post(def.Path, app.Generate(def))
		}
	})

	return r
}
