package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitServerRoutes builds the router of the score/leaderboard service.
func (h *Handler) InitServerRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/scores", h.submitScore)
		r.Get("/api/leaderboard", h.leaderboard)
		r.Get("/api/users/{id}/high_score", h.highScore)
		r.Post("/api/log_item_pickup", h.logItemPickup)
	})

	return router
}

// InitCodexRoutes builds the router of the item codex service.
func (h *Handler) InitCodexRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/items", h.addItem)
		r.Get("/api/items", h.listItems)
		r.Get("/api/items/{code}", h.getItem)
	})

	return router
}
