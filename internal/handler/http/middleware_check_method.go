// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/exercise-tracker/internal/app"
	"github.com/MKhiriev/exercise-tracker/internal/utils"
	"github.com/MKhiriev/exercise-tracker/models"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a request path matches a
// registered route but its method is not handled. This handler answers
// 404 Not Found instead, so unsupported methods are indistinguishable from
// unknown paths.
//
// The lookup uses [chi.Mux.Match], so parameterised patterns such as
// "/api/users/{_id}/logs" are resolved the same way routing resolves them.
// If the method does match, the request is forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound is the router's NotFound handler, so unknown paths, disabled
// routes and unsupported methods share one JSON body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
