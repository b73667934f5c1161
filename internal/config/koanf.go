// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/etsy-dashboard/config.yaml",
	"/etc/etsy-dashboard/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values. These are
// applied first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:            "Etsy Dashboard",
			BaseURL:         "https://etsydashboard.com",
			Environment:     "development",
			SupportEmail:    "support@etsydashboard.com",
			PremiumPriceUSD: 9.0,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8470,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Backend: BackendConfig{
			URL:       "",
			APIKey:    "",
			Timeout:   30 * time.Second,
			RateLimit: 10,
			RateBurst: 20,
		},
		Auth: AuthConfig{
			SessionSecret:   "",
			SessionTTL:      24 * time.Hour,
			RememberTTL:     30 * 24 * time.Hour,
			CookieName:      "etsydash_session",
			CookieSecure:    true,
			AccessKeyHashes: []string{},
			OIDC: OIDCConfig{
				IssuerURL:    "",
				ClientID:     "",
				ClientSecret: "",
				RedirectURL:  "",
				Scopes:       []string{"openid", "profile", "email"},
				PKCEEnabled:  true,
			},
		},
		Upload: UploadConfig{
			MaxSizeBytes: 20 << 20, // 20 MiB
		},
		Usage: UsageConfig{
			WeeklyLimit:     10,
			DuplicateWindow: 30 * time.Minute,
		},
		Collector: CollectorConfig{
			Enabled:       false, // Opt-in; consent alone does not archive until enabled
			DataDir:       "/data/collected",
			RetentionDays: 365,
		},
		Cache: CacheConfig{
			BenchmarkTTL: time.Hour,
		},
		Storage: StorageConfig{
			Path:       "/data/state",
			GCInterval: 10 * time.Minute,
		},
		Analytics: AnalyticsConfig{
			GoogleMeasurementID: "",
			MetaPixelID:         "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// loadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults from defaultConfig
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func loadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// ETSYDASH_BACKEND_URL -> backend.url
	// ETSYDASH_SESSION_SECRET -> auth.session_secret
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ConfigFilePath returns the config file Load would use, or empty string
// when configuration comes from defaults and environment only.
func ConfigFilePath() string {
	return findConfigFile()
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"auth.access_key_hashes",
	"auth.oidc.scopes",
}

// processSliceFields converts comma-separated string values to slices for known
// slice fields. Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - ETSYDASH_BACKEND_URL -> backend.url
//   - ETSYDASH_HTTP_PORT -> server.port
//   - ETSYDASH_SESSION_SECRET -> auth.session_secret
//   - ETSYDASH_OIDC_ISSUER_URL -> auth.oidc.issuer_url
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// App mappings
		"etsydash_app_name":      "app.name",
		"etsydash_base_url":      "app.base_url",
		"etsydash_environment":   "app.environment",
		"etsydash_support_email": "app.support_email",
		"etsydash_premium_price": "app.premium_price_usd",

		// Server mappings
		"etsydash_http_host":        "server.host",
		"etsydash_http_port":        "server.port",
		"etsydash_http_timeout":     "server.timeout",
		"etsydash_shutdown_timeout": "server.shutdown_timeout",

		// Backend mappings
		"etsydash_backend_url":        "backend.url",
		"etsydash_backend_api_key":    "backend.api_key",
		"etsydash_backend_timeout":    "backend.timeout",
		"etsydash_backend_rate_limit": "backend.rate_limit",
		"etsydash_backend_rate_burst": "backend.rate_burst",

		// Auth mappings
		"etsydash_session_secret":    "auth.session_secret",
		"etsydash_session_ttl":       "auth.session_ttl",
		"etsydash_remember_ttl":      "auth.remember_ttl",
		"etsydash_cookie_name":       "auth.cookie_name",
		"etsydash_cookie_secure":     "auth.cookie_secure",
		"etsydash_access_key_hashes": "auth.access_key_hashes",

		// OIDC SSO mappings
		"etsydash_oidc_issuer_url":    "auth.oidc.issuer_url",
		"etsydash_oidc_client_id":     "auth.oidc.client_id",
		"etsydash_oidc_client_secret": "auth.oidc.client_secret",
		"etsydash_oidc_redirect_url":  "auth.oidc.redirect_url",
		"etsydash_oidc_scopes":        "auth.oidc.scopes",
		"etsydash_oidc_pkce_enabled":  "auth.oidc.pkce_enabled",

		// Upload mappings
		"etsydash_upload_max_bytes": "upload.max_size_bytes",

		// Usage quota mappings
		"etsydash_usage_weekly_limit": "usage.weekly_limit",
		"etsydash_usage_dup_window":   "usage.duplicate_window",

		// Collector mappings
		"etsydash_collector_enabled":        "collector.enabled",
		"etsydash_collector_data_dir":       "collector.data_dir",
		"etsydash_collector_retention_days": "collector.retention_days",

		// Cache mappings
		"etsydash_cache_benchmark_ttl": "cache.benchmark_ttl",

		// Storage mappings
		"etsydash_storage_path":        "storage.path",
		"etsydash_storage_gc_interval": "storage.gc_interval",

		// Analytics snippet mappings
		"etsydash_ga_measurement_id": "analytics.google_measurement_id",
		"etsydash_meta_pixel_id":     "analytics.meta_pixel_id",

		// Logging mappings
		"etsydash_log_level":  "logging.level",
		"etsydash_log_format": "logging.format",
		"etsydash_log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them.
	// This prevents random environment variables from polluting config.
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability. Only the
// log level is applied live; everything else requires a restart. The caller
// is responsible for mutex protection when accessing configuration during
// reloads.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
