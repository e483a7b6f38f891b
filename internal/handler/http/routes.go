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

	// the local API is consumed only by the UI process on the same machine,
	// so there is no auth group
	router.Route("/api", func(r chi.Router) {
		r.Post("/transactions/", h.enqueueTransaction)
		r.Get("/status/", h.syncStatus)
		r.Post("/sync/", h.triggerSync)

		r.Route("/queue", func(q chi.Router) {
			q.Get("/export", h.exportQueue)
			q.Post("/import", h.importQueue)
			q.Post("/purge", h.purgeQueue)
		})
	})

	return router
}
