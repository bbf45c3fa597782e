// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version/", h.getVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withETag, withGZip)

			r.Get("/api/sync/status", h.getSyncStatus)
			r.Post("/api/sync/", h.triggerSync)
			r.Get("/api/sync/queue", h.getQueue)
			r.Post("/api/sync/queue/drain", h.drainQueue)
			r.Get("/api/sync/history", h.getHistory)
			r.Get("/api/sync/revisions", h.getRevisions)
			r.Post("/api/sync/rollback", h.rollback)
		})

		// upgraded connections bypass the buffering middlewares
		r.Get("/api/sync/events", h.streamSyncEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
