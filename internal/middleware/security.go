// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package middleware

import (
	"net/http"
)

// SecurityHeaders sets the standard browser hardening headers on every
// response. The CSP allows inline scripts because the JSON-LD blocks and
// analytics snippets are rendered inline by the templates.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://www.googletagmanager.com https://connect.facebook.net; "+
				"img-src 'self' data: https://www.facebook.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"connect-src 'self' https://www.google-analytics.com")

		next.ServeHTTP(w, r)
	})
}

// HSTS adds Strict-Transport-Security. Only mounted in production where TLS
// terminates in front of the server.
func HSTS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}
