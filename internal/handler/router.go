package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhoulin/matchquiz/internal/config"
	apihandler "github.com/zhoulin/matchquiz/internal/handler/api"
	"github.com/zhoulin/matchquiz/internal/handler/pages"
	"github.com/zhoulin/matchquiz/internal/service/session"
	"github.com/zhoulin/matchquiz/internal/store"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, sessions *session.Service, history *store.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	pages.New(cfg, sessions, history).RegisterRoutes(r)

	apiHandler := apihandler.New(cfg, sessions, history)
	r.Route("/api", func(api chi.Router) {
		apiHandler.RegisterRoutes(api)
	})

	return r
}
