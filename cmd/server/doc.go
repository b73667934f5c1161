// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package main is the entry point for the Etsy Dashboard frontend server.

Etsy Dashboard is a self-hosted analytics frontend for Etsy sellers. It
serves the fee calculator, the upload-driven finance, customers, and SEO
dashboards, and the freemium account pages, talking to the analytics
backend for authentication, subscriptions, and market benchmarks.

# Application Architecture

The server runs under a Suture v4 supervision tree:

	RootSupervisor ("etsydashboard")
	├── BackgroundSupervisor ("background-layer")
	│   ├── Collector (anonymized dataset archive)
	│   └── Maintenance cron (sweeps + benchmark refresh)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (pages, JSON API, Swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Storage: BadgerDB for sessions, uploads, and usage windows
 4. Backend client: rate-limited, circuit-broken analytics backend access
 5. Auth: session manager, access keys, optional OIDC single sign-on
 6. Authorization: Casbin plan gate (free vs premium surfaces)
 7. Renderer: html/template pages with SEO snippets
 8. Supervisor tree: background services, then the HTTP server

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest
priority wins): environment variables, config file (config.yaml),
built-in defaults. See internal/config for the full reference.

Required in production:
  - SESSION_SECRET: 32+ character secret for session cookie signing
  - BACKEND_URL: analytics backend base URL
  - BACKEND_API_KEY: service key for backend requests

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM: the HTTP
server drains in-flight requests (bounded by SHUTDOWN_TIMEOUT), then the
background services stop and the store closes.
*/
package main
