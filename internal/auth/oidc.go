// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zitadel/oidc/v3/pkg/client/rp"
	"github.com/zitadel/oidc/v3/pkg/oidc"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
)

// oidcStateTTL bounds how long an authorization round trip may take.
const oidcStateTTL = 10 * time.Minute

const oidcStateKeyPrefix = "oidc_state:"

// SSOIdentity is what the callback hands to the session-establishment
// callback after a successful code exchange.
type SSOIdentity struct {
	Subject     string
	Email       string
	DisplayName string
}

// SSOProvider runs the OIDC authorization code flow (PKCE) against the
// configured issuer. Construct it only when config.OIDC.Enabled().
type SSOProvider struct {
	party rp.RelyingParty
	store *storage.Store
}

// oidcState is the per-flow state record, consumed once on callback.
type oidcState struct {
	Next      string    `json:"next"` // Post-login redirect target
	CreatedAt time.Time `json:"created_at"`
}

// NewSSOProvider discovers the issuer and builds the relying party.
func NewSSOProvider(ctx context.Context, cfg *config.OIDCConfig, store *storage.Store) (*SSOProvider, error) {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "profile", "email"}
	}

	options := []rp.Option{
		rp.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	}
	if cfg.PKCEEnabled {
		options = append(options, rp.WithPKCE(nil))
	}

	party, err := rp.NewRelyingPartyOIDC(ctx,
		cfg.IssuerURL, cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, scopes, options...)
	if err != nil {
		return nil, fmt.Errorf("create oidc relying party: %w", err)
	}

	return &SSOProvider{party: party, store: store}, nil
}

// BeginLogin stores flow state and returns the issuer authorization URL.
// next is where the browser lands after the callback establishes a session.
func (p *SSOProvider) BeginLogin(next string) (string, error) {
	stateKey, err := randomToken(16)
	if err != nil {
		return "", fmt.Errorf("generate oidc state: %w", err)
	}

	state := oidcState{Next: next, CreatedAt: time.Now()}
	if err := p.store.PutJSON(oidcStateKeyPrefix+stateKey, state, oidcStateTTL); err != nil {
		return "", fmt.Errorf("store oidc state: %w", err)
	}

	return rp.AuthURL(stateKey, p.party), nil
}

// HandleCallback validates state, exchanges the code, and returns the
// identity plus the post-login redirect target. State is single-use.
func (p *SSOProvider) HandleCallback(ctx context.Context, code, stateKey string) (*SSOIdentity, string, error) {
	var state oidcState
	if err := p.store.GetJSON(oidcStateKeyPrefix+stateKey, &state); err != nil {
		return nil, "", fmt.Errorf("unknown or expired oidc state")
	}
	if err := p.store.Delete(oidcStateKeyPrefix + stateKey); err != nil {
		logging.Warn().Err(err).Msg("Failed to consume OIDC state")
	}

	tokens, err := rp.CodeExchange[*oidc.IDTokenClaims](ctx, code, p.party)
	if err != nil {
		return nil, "", fmt.Errorf("oidc code exchange: %w", err)
	}

	claims := tokens.IDTokenClaims
	if claims == nil || claims.Subject == "" {
		return nil, "", fmt.Errorf("oidc token carries no subject")
	}

	identity := &SSOIdentity{
		Subject:     claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}
	if identity.DisplayName == "" {
		identity.DisplayName = claims.PreferredUsername
	}
	if identity.Email == "" {
		return nil, "", fmt.Errorf("oidc token carries no email")
	}

	next := state.Next
	if next == "" {
		next = "/dashboard"
	}
	return identity, next, nil
}
