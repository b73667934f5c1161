// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		SessionSecret: "0123456789abcdef0123456789abcdef",
		SessionTTL:    24 * time.Hour,
		RememberTTL:   30 * 24 * time.Hour,
		CookieName:    "etsydash_session",
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewManager(store, testAuthConfig())
}

func testAccount() models.Account {
	return models.Account{
		ID:          "u-123",
		Email:       "seller@example.com",
		DisplayName: "Seller",
		ShopName:    "MugShop",
		Plan:        models.PlanFree,
	}
}

// requestWithCookie copies the session cookie from a recorder onto a new
// request, the way a browser would.
func requestWithCookie(t *testing.T, rec *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// ===== Session Lifecycle =====

func TestSessionCreateAndResolve(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	created, err := m.Create(rec, testAccount(), "backend-token", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cookie := rec.Result().Cookies()[0]
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie flags = %+v, want HttpOnly SameSite=Lax", cookie)
	}
	if strings.Contains(cookie.Value, created.UserID) {
		t.Error("cookie leaks user data; it must only reference the record")
	}

	sess, err := m.FromRequest(requestWithCookie(t, rec, "/dashboard"))
	if err != nil {
		t.Fatalf("FromRequest: %v", err)
	}
	if sess.UserID != "u-123" || sess.AccessToken != "backend-token" {
		t.Errorf("resolved session = %+v", sess)
	}
	if sess.CSRFToken == "" {
		t.Error("session has no CSRF token")
	}

	account := sess.Account()
	if account.Email != "seller@example.com" || account.IsPremium() {
		t.Errorf("account view = %+v", account)
	}
}

func TestSessionRememberExtendsTTL(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	sess, err := m.Create(rec, testAccount(), "", true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if lifetime := time.Until(sess.ExpiresAt); lifetime < 29*24*time.Hour {
		t.Errorf("remember-me lifetime = %v, want about 30 days", lifetime)
	}
}

func TestSessionDestroy(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	if _, err := m.Create(rec, testAccount(), "", false); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := requestWithCookie(t, rec, "/logout")
	out := httptest.NewRecorder()
	m.Destroy(out, req)

	// Cookie is expired.
	cleared := out.Result().Cookies()[0]
	if cleared.MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", cleared.MaxAge)
	}

	// Record is gone even if the old cookie is replayed.
	if _, err := m.FromRequest(req); err != ErrNoSession {
		t.Errorf("replayed cookie resolved after destroy: %v", err)
	}
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	if _, err := m.Create(rec, testAccount(), "", false); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	original := rec.Result().Cookies()[0]
	req.AddCookie(&http.Cookie{Name: original.Name, Value: original.Value + "x"})

	if _, err := m.FromRequest(req); err != ErrNoSession {
		t.Errorf("tampered cookie resolved: %v", err)
	}
}

func TestSessionSweepExpired(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	sess, err := m.Create(rec, testAccount(), "", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Force the record past its expiry, then sweep.
	sess.ExpiresAt = time.Now().Add(time.Minute)
	if err := m.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	if err := m.store.PutJSON("session:"+sess.ID, sess, time.Hour); err != nil {
		t.Fatalf("rewrite record: %v", err)
	}

	gauge := testutil.ToFloat64(metrics.ActiveSessions)

	swept, err := m.SweepExpired()
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if swept != 1 {
		t.Errorf("swept = %d, want 1", swept)
	}

	// Lapsed sessions bypass Destroy; the sweep must settle the gauge.
	if got := testutil.ToFloat64(metrics.ActiveSessions); got != gauge-1 {
		t.Errorf("active sessions gauge = %v, want %v", got, gauge-1)
	}
}

// ===== Session Datasets =====

func TestSessionDatasets(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	sess, err := m.Create(rec, testAccount(), "", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	csv := []byte("Date,Product,Price\n01/02/2026,Mug,20")
	if err := m.StoreDataset(sess, dataset.KindSoldItems, csv); err != nil {
		t.Fatalf("StoreDataset: %v", err)
	}

	got, err := m.Dataset(sess, dataset.KindSoldItems)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if string(got) != string(csv) {
		t.Error("dataset round trip mismatch")
	}

	kinds, err := m.DatasetKinds(sess)
	if err != nil {
		t.Fatalf("DatasetKinds: %v", err)
	}
	if len(kinds) != 1 || kinds[0] != dataset.KindSoldItems {
		t.Errorf("kinds = %v", kinds)
	}

	if err := m.ClearDatasets(sess); err != nil {
		t.Fatalf("ClearDatasets: %v", err)
	}
	if _, err := m.Dataset(sess, dataset.KindSoldItems); err != storage.ErrNotFound {
		t.Errorf("dataset survived clear: %v", err)
	}
}

// ===== Middleware =====

func TestRequireSessionRedirects(t *testing.T) {
	m := newTestManager(t)

	handler := m.Sessions(RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// Anonymous: redirected to sign-in with the original path.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/finance", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/auth?next=/dashboard/finance" {
		t.Errorf("redirect = %q", loc)
	}

	// Signed in: passes.
	loginRec := httptest.NewRecorder()
	if _, err := m.Create(loginRec, testAccount(), "", false); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithCookie(t, loginRec, "/dashboard/finance"))
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
