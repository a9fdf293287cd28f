package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/records", h.recordEvent)
		r.Get("/records/{id}", h.recordStatus)

		r.Get("/queue/stats", h.queueStats)
		r.Post("/sync/now", h.syncNow)

		r.Get("/deadletter", h.deadLetters)
		r.Post("/deadletter/{id}/requeue", h.requeueDeadLetter)

		r.Get("/connectivity", h.connectivityState)
		r.Post("/connectivity", h.setConnectivity)
	})

	return router
}
