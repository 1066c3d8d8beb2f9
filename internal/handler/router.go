package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vaultpass/passmeter/internal/metrics"
	"github.com/vaultpass/passmeter/internal/middleware"
)

// Routes bundles what NewRouter mounts.
type Routes struct {
	Strength  *StrengthHandler
	Generator *GeneratorHandler
	History   *HistoryHandler
	Session   *SessionHandler

	JWTSecret string
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer

	// RateLimit, when set, wraps every /api/v1 route.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter builds the HTTP API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(rt.Metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if rt.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(rt.Gatherer))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if rt.RateLimit != nil {
			r.Use(rt.RateLimit)
		}

		r.Get("/tips", HandleTips)
		r.Post("/session", rt.Session.HandleStart)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(rt.JWTSecret))
			r.Post("/strength", rt.Strength.HandleCheck)
			r.Post("/generate", rt.Generator.HandleGenerate)
			r.Post("/generate/themed", rt.Generator.HandleGenerateThemed)
			r.Get("/history/{mode}", rt.History.HandleList)
			r.Delete("/history", rt.History.HandleClear)
		})
	})

	return r
}
