// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package config

import (
	"strings"
	"testing"
)

// validConfig returns a configuration that passes Validate().
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Backend.URL = "https://api.etsydashboard.com"
	cfg.Backend.APIKey = "service-key"
	cfg.Auth.SessionSecret = testSessionSecret
	return cfg
}

// ===== Validation =====

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() on complete config = %v, want nil", err)
	}
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing backend URL",
			mutate:  func(c *Config) { c.Backend.URL = "" },
			wantErr: "ETSYDASH_BACKEND_URL is required",
		},
		{
			name:    "backend URL with bad scheme",
			mutate:  func(c *Config) { c.Backend.URL = "ftp://backend.local" },
			wantErr: "scheme must be http or https",
		},
		{
			name:    "backend URL with path",
			mutate:  func(c *Config) { c.Backend.URL = "https://backend.local/api" },
			wantErr: "base URL only",
		},
		{
			name:    "missing backend API key",
			mutate:  func(c *Config) { c.Backend.APIKey = "" },
			wantErr: "ETSYDASH_BACKEND_API_KEY is required",
		},
		{
			name:    "missing session secret",
			mutate:  func(c *Config) { c.Auth.SessionSecret = "" },
			wantErr: "ETSYDASH_SESSION_SECRET is required",
		},
		{
			name:    "short session secret",
			mutate:  func(c *Config) { c.Auth.SessionSecret = "too-short" },
			wantErr: "at least 32 bytes",
		},
		{
			name: "placeholder session secret",
			mutate: func(c *Config) {
				c.Auth.SessionSecret = "CHANGEME_CHANGEME_CHANGEME_CHANGEME"
			},
			wantErr: "placeholder",
		},
		{
			name: "remember TTL shorter than session TTL",
			mutate: func(c *Config) {
				c.Auth.RememberTTL = c.Auth.SessionTTL / 2
			},
			wantErr: "ETSYDASH_REMEMBER_TTL",
		},
		{
			name: "partial OIDC config",
			mutate: func(c *Config) {
				c.Auth.OIDC.IssuerURL = "https://auth.example.com"
			},
			wantErr: "partially configured",
		},
		{
			name: "OIDC without PKCE needs client secret",
			mutate: func(c *Config) {
				c.Auth.OIDC.IssuerURL = "https://auth.example.com"
				c.Auth.OIDC.ClientID = "etsydash"
				c.Auth.OIDC.RedirectURL = "https://etsydashboard.com/auth/sso/callback"
				c.Auth.OIDC.PKCEEnabled = false
				c.Auth.OIDC.ClientSecret = ""
			},
			wantErr: "ETSYDASH_OIDC_CLIENT_SECRET",
		},
		{
			name: "OIDC http issuer on remote host",
			mutate: func(c *Config) {
				c.Auth.OIDC.IssuerURL = "http://auth.example.com"
				c.Auth.OIDC.ClientID = "etsydash"
				c.Auth.OIDC.RedirectURL = "https://etsydashboard.com/auth/sso/callback"
			},
			wantErr: "https for non-localhost",
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "ETSYDASH_HTTP_PORT",
		},
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: "ETSYDASH_ENVIRONMENT",
		},
		{
			name:    "zero upload cap",
			mutate:  func(c *Config) { c.Upload.MaxSizeBytes = 0 },
			wantErr: "ETSYDASH_UPLOAD_MAX_BYTES",
		},
		{
			name:    "negative weekly limit",
			mutate:  func(c *Config) { c.Usage.WeeklyLimit = -1 },
			wantErr: "ETSYDASH_USAGE_WEEKLY_LIMIT",
		},
		{
			name: "collector enabled without data dir",
			mutate: func(c *Config) {
				c.Collector.Enabled = true
				c.Collector.DataDir = ""
			},
			wantErr: "ETSYDASH_COLLECTOR_DATA_DIR",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "ETSYDASH_LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "ETSYDASH_LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsCompleteOIDC(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.OIDC.IssuerURL = "https://auth.example.com/realms/sellers"
	cfg.Auth.OIDC.ClientID = "etsydash"
	cfg.Auth.OIDC.RedirectURL = "https://etsydashboard.com/auth/sso/callback"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with complete OIDC = %v, want nil", err)
	}
}

func TestValidateAcceptsLocalhostIssuer(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.OIDC.IssuerURL = "http://localhost:8080/realms/dev"
	cfg.Auth.OIDC.ClientID = "etsydash"
	cfg.Auth.OIDC.RedirectURL = "http://localhost:8470/auth/sso/callback"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with localhost issuer = %v, want nil", err)
	}
}

// ===== Accessors =====

func TestIsProduction(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if cfg.App.IsProduction() {
		t.Error("development config should not report production")
	}

	cfg.App.Environment = "production"
	if !cfg.App.IsProduction() {
		t.Error("production config should report production")
	}
}

func TestOIDCEnabledAndComplete(t *testing.T) {
	t.Parallel()

	var oidc OIDCConfig
	if oidc.Enabled() {
		t.Error("empty OIDC config should not be enabled")
	}
	if oidc.Complete() {
		t.Error("empty OIDC config should not be complete")
	}

	oidc.IssuerURL = "https://auth.example.com"
	if !oidc.Enabled() {
		t.Error("OIDC with issuer should be enabled")
	}
	if oidc.Complete() {
		t.Error("OIDC with only issuer should not be complete")
	}

	oidc.ClientID = "etsydash"
	oidc.RedirectURL = "https://etsydashboard.com/auth/sso/callback"
	if !oidc.Complete() {
		t.Error("OIDC with issuer, client ID, and redirect should be complete")
	}
}

// ===== URL validation =====

func TestValidateHTTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid http", "http://backend.local:8000", false},
		{"valid https", "https://api.etsydashboard.com", false},
		{"trailing slash allowed", "https://api.etsydashboard.com/", false},
		{"path rejected", "https://api.etsydashboard.com/v1", true},
		{"query rejected", "https://api.etsydashboard.com?x=1", true},
		{"bad scheme", "ftp://api.etsydashboard.com", true},
		{"missing host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateHTTPURL(tt.url, "TEST_URL")
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
