// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/backend"
	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/collect"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/seo"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
	"github.com/Brice601/etsydashboard-frontend/internal/usage"
	"github.com/Brice601/etsydashboard-frontend/internal/web"
)

// testEnv stands up the full router against an in-memory store and a fake
// analytics backend. Tests register backend routes on mux before making
// requests.
type testEnv struct {
	t        *testing.T
	cfg      *config.Config
	srv      *Server
	handler  http.Handler
	sessions *auth.Manager
	mux      *http.ServeMux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mux := http.NewServeMux()
	fakeBackend := httptest.NewServer(mux)
	t.Cleanup(fakeBackend.Close)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:            "Etsy Dashboard",
			BaseURL:         "https://etsydashboard.test",
			Environment:     "development",
			SupportEmail:    "support@etsydashboard.test",
			PremiumPriceUSD: 9,
		},
		Backend: config.BackendConfig{
			URL:       fakeBackend.URL,
			APIKey:    "test-service-key",
			Timeout:   2 * time.Second,
			RateLimit: 1000,
			RateBurst: 1000,
		},
		Auth: config.AuthConfig{
			SessionSecret: strings.Repeat("s", 32),
			SessionTTL:    time.Hour,
			RememberTTL:   24 * time.Hour,
			CookieName:    "etsydash_session",
		},
		Upload: config.UploadConfig{MaxSizeBytes: 1 << 20},
		Usage:  config.UsageConfig{WeeklyLimit: 10, DuplicateWindow: 30 * time.Minute},
		Cache:  config.CacheConfig{BenchmarkTTL: time.Minute},
	}

	store, err := storage.Open(&config.StorageConfig{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	gate, err := authz.New()
	if err != nil {
		t.Fatalf("build gate: %v", err)
	}

	renderer, err := web.NewRenderer(&cfg.App, seo.NewSnippets(&cfg.Analytics), gate)
	if err != nil {
		t.Fatalf("build renderer: %v", err)
	}

	benchmarks := cache.New("benchmarks", cfg.Cache.BenchmarkTTL)
	t.Cleanup(benchmarks.Close)

	sessions := auth.NewManager(store, &cfg.Auth)
	srv := NewServer(Deps{
		Config:     cfg,
		Renderer:   renderer,
		Sessions:   sessions,
		Keys:       auth.NewKeyChecker(cfg.Auth.AccessKeyHashes),
		Gate:       gate,
		Usage:      usage.NewTracker(store, &cfg.Usage),
		Collector:  collect.New(&cfg.Collector, store),
		Backend:    backend.New(&cfg.Backend),
		Benchmarks: benchmarks,
	})

	return &testEnv{
		t:        t,
		cfg:      cfg,
		srv:      srv,
		handler:  srv.Routes(),
		sessions: sessions,
		mux:      mux,
	}
}

// signIn creates a session directly in the store and returns it with its
// cookie, skipping the login round trip.
func (e *testEnv) signIn(plan string) (*auth.Session, *http.Cookie) {
	e.t.Helper()

	rec := httptest.NewRecorder()
	sess, err := e.sessions.Create(rec, models.Account{
		ID:          "u1",
		Email:       "seller@example.com",
		DisplayName: "seller",
		Plan:        plan,
	}, "backend-token", false)
	if err != nil {
		e.t.Fatalf("create session: %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == e.cfg.Auth.CookieName {
			return sess, c
		}
	}
	e.t.Fatal("session cookie not set")
	return nil, nil
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	e.t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// postForm submits a URL-encoded form. When a session is given, its CSRF
// token rides along the way the templates send it.
func (e *testEnv) postForm(path string, form url.Values, sess *auth.Session, cookie *http.Cookie) *httptest.ResponseRecorder {
	e.t.Helper()

	if sess != nil {
		form.Set(auth.CSRFFieldName, sess.CSRFToken)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postJSON(path, body string) *httptest.ResponseRecorder {
	e.t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	data, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}
