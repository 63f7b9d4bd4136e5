// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router.
//
// /api/version and /metrics are public. Every other route requires a bearer
// token. Uploads get a body limit and the optional X-Content-SHA256 check, and
// JSON endpoints get compressed responses. Unknown paths and methods are
// answered with a JSON 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.Middleware)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withSessionID)

		// uploads: body limit first, then the optional checksum check
		r.With(limitBody(h.importLimit+multipartOverhead), withContentChecksum).
			Post("/api/contracts/import", h.importContract)
		r.With(limitBody(h.extractLimit+multipartOverhead), withContentChecksum).
			Post("/api/documents/extract", h.extractDocument)
		r.With(limitBody(h.importLimit+multipartOverhead), withContentChecksum).
			Post("/api/contracts/submit", h.submitContract)
		r.With(limitBody(h.importLimit+multipartOverhead), withContentChecksum).
			Post("/api/contracts/{contractID}/document", h.attachDocument)

		// JSON endpoints, compressed responses
		r.Group(func(r chi.Router) {
			r.Use(limitBody(multipartOverhead), middleware.Compress(5, "application/json"))

			r.Post("/api/contracts/parse", h.parseContractText)
			r.Post("/api/contracts/check-address", h.checkAddress)
			r.Post("/api/contracts", h.createContract)
			r.Delete("/api/documents/{documentID}", h.deleteDocument)
			r.Get("/api/owners/{ownerID}/identity", h.ownerIdentity)
			r.Get("/api/tenants/{tenantID}/identity", h.tenantIdentity)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
