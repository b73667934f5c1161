// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package supervisor provides Suture-based process supervision.
//
// The tree has two layers: background (collector, maintenance cron) and api
// (the HTTP server). A crash in a background service restarts that service
// without taking requests down, and vice versa.
package supervisor
