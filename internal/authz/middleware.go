// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package authz

import (
	"net/http"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
)

// Require guards a route behind a surface. Signed-in users on an
// insufficient plan land on the upgrade page instead of an error; anonymous
// requests are the session middleware's problem and pass through to its
// redirect.
func (g *Gate) Require(surface, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := auth.SessionFrom(r.Context())
			if sess == nil {
				next.ServeHTTP(w, r)
				return
			}

			if !g.Can(sess.Plan, surface, action) {
				logging.Debug().
					Str("plan", sess.Plan).
					Str("surface", surface).
					Str("path", r.URL.Path).
					Msg("Plan gate redirect")
				http.Redirect(w, r, "/premium", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
