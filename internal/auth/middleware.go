// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"context"
	"net/http"
)

type contextKey int

const sessionContextKey contextKey = iota

// Sessions resolves the session cookie on every request and, when valid,
// puts the session in the request context. Anonymous requests pass through
// untouched; route-level guards decide what requires sign-in.
func (m *Manager) Sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, err := m.FromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFrom returns the request's session, or nil for anonymous requests.
func SessionFrom(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey).(*Session)
	return sess
}

// RequireSession guards authenticated routes. Browsers are redirected to the
// sign-in page; the redirect carries the original path so sign-in can return
// there.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r.Context()) == nil {
			http.Redirect(w, r, "/auth?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
