// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// ===== Operational Endpoints =====

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
	if !strings.Contains(body(t, rec), `"ok"`) {
		t.Error("healthz body missing ok status")
	}
}

func TestReadyzReflectsBackendHealth(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if rec := env.get("/readyz", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /readyz with healthy backend = %d, want 200", rec.Code)
	}
}

func TestReadyzDegradedWhenBackendDown(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := env.get("/readyz", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /readyz with failing backend = %d, want 503", rec.Code)
	}
	if !strings.Contains(body(t, rec), "degraded") {
		t.Error("readyz body missing degraded status")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/static/app.css", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /static/app.css = %d, want 200", rec.Code)
	}
}

// ===== Routing and Guards =====

func TestNotFoundRendersErrorPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/no-such-page", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /no-such-page = %d, want 404", rec.Code)
	}
	if !strings.Contains(body(t, rec), "does not exist") {
		t.Error("404 response is not the rendered error page")
	}
}

func TestSecurityHeadersOnPages(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	for _, header := range []string{"Content-Security-Policy", "X-Content-Type-Options", "X-Frame-Options"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("missing %s header", header)
		}
	}
}

func TestRequestIDEchoed(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}
}

func TestAnonymousRedirectedToSignIn(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/dashboard", "/upload", "/dashboard/finance", "/premium"} {
		rec := env.get(path, nil)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s anonymous = %d, want 303", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/auth?next=") {
			t.Errorf("GET %s redirects to %q, want /auth?next=...", path, loc)
		}
	}
}

func TestPostWithoutCSRFTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signIn(models.PlanFree)

	// Deliberately no csrf_token field.
	req := env.postForm("/upload/clear", url.Values{}, nil, cookie)
	if req.Code != http.StatusForbidden {
		t.Fatalf("POST without CSRF token = %d, want 403", req.Code)
	}
}

func TestSignedInHubRenders(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signIn(models.PlanFree)

	rec := env.get("/dashboard", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /dashboard = %d, want 200", rec.Code)
	}
	html := body(t, rec)
	if !strings.Contains(html, "Welcome back, seller") {
		t.Error("hub missing account greeting")
	}
	if !strings.Contains(html, "10 remaining") {
		t.Error("hub missing quota allowance")
	}
}
