package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the router for the whole HTTP API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(h.withTraceID)
	r.Use(h.withLogging)
	r.Use(middleware.Recoverer)

	r.Get("/", h.GetGreeting)
	r.Post("/add", h.AddNumbers)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUsers)
			r.Post("/login", h.Login)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/", h.UpdateUser)
				r.Delete("/", h.DeleteUser)
			})
		})

		r.Get("/version/", h.GetVersion)
	})

	return r
}
