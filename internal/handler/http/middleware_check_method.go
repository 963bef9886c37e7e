// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errNotFound)
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It responds
// with 405 and an "Allow" header listing the methods registered for the
// requested path.
//
// The lookup compares each route pattern with the raw request path, which is
// exact for the static routes this service registers.
func (h *Handler) methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}
		slices.Sort(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeError(w, r, errMethodNotAllowed)
	}
}
