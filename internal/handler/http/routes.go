// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(h.withSecurityHeaders)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withRateLimit(h.generalLimiter, "general"))

		r.Get("/note/{id}", h.getNote)
		r.Post("/note/{id}", h.saveNote)

		// Password management gets the stricter quota on top of the
		// general one to slow down brute-force attempts.
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit(h.passwordLimiter, "password"))
			r.Post("/password/{id}", h.managePassword)
		})

		r.Post("/expire/{id}", h.setExpire)
	})

	return router
}
