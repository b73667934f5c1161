// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
)

// ErrNoSession is returned when the request has no valid session.
var ErrNoSession = errors.New("no active session")

// Key prefixes in the shared state store.
const (
	sessionKeyPrefix = "session:"
	datasetKeyPrefix = "sessdata:"
)

// Session is the server-side session record. The cookie only references it.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	ShopName    string    `json:"shop_name"`
	Plan        string    `json:"plan"`
	DataConsent bool      `json:"data_consent"`
	AccessToken string    `json:"access_token"` // Backend bearer token
	CSRFToken   string    `json:"csrf_token"`
	AccessKeyOK bool      `json:"access_key_ok"`
	Remember    bool      `json:"remember"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Account returns the view model pages render from.
func (s *Session) Account() models.Account {
	return models.Account{
		ID:          s.UserID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		ShopName:    s.ShopName,
		Plan:        s.Plan,
		DataConsent: s.DataConsent,
		CreatedAt:   s.CreatedAt,
	}
}

// Manager creates, resolves, and destroys sessions.
type Manager struct {
	store *storage.Store
	cfg   *config.AuthConfig
}

// NewManager wires the session manager to the shared state store.
func NewManager(store *storage.Store, cfg *config.AuthConfig) *Manager {
	return &Manager{store: store, cfg: cfg}
}

// Create writes a session record for the account and sets the cookie.
// remember extends the lifetime from SessionTTL to RememberTTL.
func (m *Manager) Create(w http.ResponseWriter, account models.Account, accessToken string, remember bool) (*Session, error) {
	ttl := m.cfg.SessionTTL
	if remember {
		ttl = m.cfg.RememberTTL
	}

	csrfToken, err := randomToken(32)
	if err != nil {
		return nil, fmt.Errorf("generate csrf token: %w", err)
	}

	now := time.Now()
	sess := &Session{
		ID:          uuid.NewString(),
		UserID:      account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		ShopName:    account.ShopName,
		Plan:        models.NormalizePlan(account.Plan),
		DataConsent: account.DataConsent,
		AccessToken: accessToken,
		CSRFToken:   csrfToken,
		Remember:    remember,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	if err := m.store.PutJSON(sessionKeyPrefix+sess.ID, sess, ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := signSessionToken([]byte(m.cfg.SessionSecret), sess.ID, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}
	m.writeCookie(w, token, sess.ExpiresAt)

	metrics.ActiveSessions.Inc()
	logging.Info().Str("user_id", sess.UserID).Bool("remember", remember).Msg("Session created")

	return sess, nil
}

// FromRequest resolves the session cookie to its record. Returns
// ErrNoSession when the cookie is absent, invalid, or the record is gone.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	sid, err := parseSessionToken([]byte(m.cfg.SessionSecret), cookie.Value)
	if err != nil {
		return nil, ErrNoSession
	}

	var sess Session
	if err := m.store.GetJSON(sessionKeyPrefix+sid, &sess); err != nil {
		return nil, ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Save persists changes to an existing session record, keeping its TTL.
func (m *Manager) Save(sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrNoSession
	}
	return m.store.PutJSON(sessionKeyPrefix+sess.ID, sess, ttl)
}

// Destroy removes the session record and expires the cookie. Safe to call
// without a live session.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if sess, err := m.FromRequest(r); err == nil {
		if err := m.store.Delete(sessionKeyPrefix + sess.ID); err != nil {
			logging.Warn().Err(err).Msg("Failed to delete session record")
		}
		m.clearDatasets(sess.ID)
		metrics.ActiveSessions.Dec()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SweepExpired deletes session records whose expiry has passed. Badger TTLs
// handle most of this; the sweep covers records written with a longer TTL
// than their recorded expiry after a Save.
func (m *Manager) SweepExpired() (int, error) {
	var stale []string
	now := time.Now()

	err := m.store.IteratePrefix(sessionKeyPrefix, func(key string, value []byte) error {
		var sess Session
		if err := unmarshalSession(value, &sess); err != nil {
			stale = append(stale, key) // Unreadable records are dead weight
			return nil
		}
		if now.After(sess.ExpiresAt) {
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}

	for _, key := range stale {
		if err := m.store.Delete(key); err != nil {
			return 0, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	// Lapsed sessions never pass through Destroy, so the gauge settles here.
	metrics.ActiveSessions.Sub(float64(len(stale)))
	return len(stale), nil
}

func (m *Manager) writeCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ===== Per-session datasets =====

// StoreDataset attaches an uploaded dataset to the session. It lives as long
// as the session does.
func (m *Manager) StoreDataset(sess *Session, kind dataset.Kind, data []byte) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrNoSession
	}
	key := datasetKey(sess.ID, kind)
	if err := m.store.PutBytes(key, data, ttl); err != nil {
		return fmt.Errorf("store dataset %s: %w", kind, err)
	}
	return nil
}

// Dataset loads one uploaded dataset, or storage.ErrNotFound.
func (m *Manager) Dataset(sess *Session, kind dataset.Kind) ([]byte, error) {
	return m.store.GetBytes(datasetKey(sess.ID, kind))
}

// DatasetKinds lists which kinds the session has uploaded.
func (m *Manager) DatasetKinds(sess *Session) ([]dataset.Kind, error) {
	var kinds []dataset.Kind
	for _, kind := range dataset.Kinds {
		ok, err := m.store.Exists(datasetKey(sess.ID, kind))
		if err != nil {
			return nil, err
		}
		if ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// ClearDatasets removes every uploaded dataset from the session.
func (m *Manager) ClearDatasets(sess *Session) error {
	_, err := m.store.DeletePrefix(datasetKeyPrefix + sess.ID + ":")
	return err
}

func (m *Manager) clearDatasets(sessionID string) {
	if _, err := m.store.DeletePrefix(datasetKeyPrefix + sessionID + ":"); err != nil {
		logging.Warn().Err(err).Msg("Failed to clear session datasets")
	}
}

func datasetKey(sessionID string, kind dataset.Kind) string {
	return datasetKeyPrefix + sessionID + ":" + string(kind)
}

func unmarshalSession(data []byte, sess *Session) error {
	return json.Unmarshal(data, sess)
}

func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
