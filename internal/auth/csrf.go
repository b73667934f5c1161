// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/Brice601/etsydashboard-frontend/internal/logging"
)

// CSRFFieldName is the hidden form field templates must include on every
// state-changing form.
const CSRFFieldName = "csrf_token"

// csrfSafeMethods need no token per RFC 7231.
var csrfSafeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// CSRF rejects state-changing requests whose form token does not match the
// session's token. Anonymous requests pass: they have no session to ride.
// The JSON API under /api/v1 uses bearer-style headers instead and is not
// routed through this middleware.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if csrfSafeMethods[r.Method] {
			next.ServeHTTP(w, r)
			return
		}

		sess := SessionFrom(r.Context())
		if sess == nil {
			next.ServeHTTP(w, r)
			return
		}

		token := r.PostFormValue(CSRFFieldName)
		if token == "" {
			token = r.Header.Get("X-CSRF-Token")
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
			logging.Warn().
				Str("path", r.URL.Path).
				Str("user_id", sess.UserID).
				Msg("CSRF token mismatch")
			http.Error(w, "Forbidden: invalid CSRF token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
