package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/okrflow/okrflow-lambda/internal/auth"
	"github.com/okrflow/okrflow-lambda/internal/middlewares"
	"github.com/okrflow/okrflow-lambda/internal/okr"
	"github.com/okrflow/okrflow-lambda/internal/team"
	"github.com/okrflow/okrflow-lambda/internal/user"
)

type RouterConfig struct {
	OKRHandler  *okr.Handler
	UserHandler *user.Handler
	TeamHandler *team.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/okrs", okr.Routes(cfg.OKRHandler))
			r.Mount("/users", user.Routes(cfg.UserHandler))
			r.Mount("/teams", team.Routes(cfg.TeamHandler))
		})
	})
	return r
}
