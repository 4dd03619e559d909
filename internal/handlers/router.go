package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
)

func NewRouter(h Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5, "application/json"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)
		r.Handle("/login", (*Login)(&h))

		r.Route("/account", func(r chi.Router) {
			r.Handle("/", (*Account)(&h))
			r.Handle("/movements", (*Movements)(&h))
			r.Handle("/statement", (*Statement)(&h))
			r.Handle("/transfer", (*Transfer)(&h))
			r.Handle("/loan", (*Loan)(&h))
			r.Handle("/close", (*Close)(&h))
		})

		r.Handle("/bank/stats", (*Stats)(&h))
	})

	return r
}
