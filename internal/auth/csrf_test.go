// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func csrfTestHandler() http.Handler {
	return CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func withSession(r *http.Request, sess *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
}

// ===== CSRF Middleware =====

func TestCSRFAcceptsMatchingToken(t *testing.T) {
	sess := &Session{ID: "s1", CSRFToken: "tok-abc"}

	form := url.Values{CSRFFieldName: {"tok-abc"}}
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, withSession(req, sess))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCSRFRejectsMismatch(t *testing.T) {
	sess := &Session{ID: "s1", CSRFToken: "tok-abc"}

	tests := []struct {
		name  string
		token string
	}{
		{"wrong token", "tok-evil"},
		{"missing token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			if tt.token != "" {
				form.Set(CSRFFieldName, tt.token)
			}
			req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rec := httptest.NewRecorder()
			csrfTestHandler().ServeHTTP(rec, withSession(req, sess))
			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
		})
	}
}

func TestCSRFHeaderFallback(t *testing.T) {
	sess := &Session{ID: "s1", CSRFToken: "tok-abc"}

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set("X-CSRF-Token", "tok-abc")

	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, withSession(req, sess))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCSRFSkipsSafeMethodsAndAnonymous(t *testing.T) {
	// GET needs no token even with a session.
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, withSession(req, &Session{CSRFToken: "tok"}))
	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", rec.Code)
	}

	// Anonymous POST passes; there is no session to protect.
	req = httptest.NewRequest(http.MethodPost, "/calculate-fees", nil)
	rec = httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("anonymous POST status = %d, want 200", rec.Code)
	}
}
