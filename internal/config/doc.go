// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package config provides layered configuration management for Etsy Dashboard.
//
// Configuration is loaded with Koanf v2 from three sources, later sources
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. ETSYDASH_* environment variables
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err) // misconfiguration refuses to start
//	}
//
// # Required Settings
//
// These must come from the environment (or config file) - there are no
// usable defaults:
//
//	ETSYDASH_BACKEND_URL      Analytics backend base URL
//	ETSYDASH_BACKEND_API_KEY  Backend service key
//	ETSYDASH_SESSION_SECRET   HMAC key for session cookies (>= 32 bytes)
//
// # Common Settings
//
//	ETSYDASH_HTTP_PORT             Listener port (default 8470)
//	ETSYDASH_ENVIRONMENT           development or production
//	ETSYDASH_STORAGE_PATH          Badger state store directory
//	ETSYDASH_USAGE_WEEKLY_LIMIT    Free-plan analyses per week (default 10)
//	ETSYDASH_COLLECTOR_ENABLED     Consent-gated dataset archival (default false)
//	ETSYDASH_OIDC_ISSUER_URL       Enables SSO together with client ID + redirect
//	ETSYDASH_LOG_LEVEL             trace, debug, info, warn, error
//
// Slice-valued settings (access key hashes, OIDC scopes) accept
// comma-separated environment values.
//
// # Config File
//
// A YAML file mirrors the structure of the Config struct:
//
//	server:
//	  port: 8470
//	usage:
//	  weekly_limit: 10
//	collector:
//	  enabled: true
//	  data_dir: /data/collected
//
// Secrets should stay in the environment rather than the file.
//
// # Hot Reload
//
// WatchConfigFile reloads the file on change; only the log level is applied
// to a running process. Everything else requires a restart.
package config
