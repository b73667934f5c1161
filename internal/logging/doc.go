// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package logging provides centralized zerolog-based structured logging for Etsy Dashboard.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for development.
//
// # Quick Start
//
//	import "github.com/Brice601/etsydashboard-frontend/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Caller: false,
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("shop", shopName).Msg("Analysis complete")
//	logging.Error().Err(err).Int("rows", n).Msg("Dataset rejected")
//
//	// Context-aware logging
//	logging.Ctx(ctx).Info().Str("dataset", kind).Msg("Processing upload")
//
// # Log Levels
//
// Supported log levels (from most to least verbose):
//
//	trace  - Very detailed diagnostic information
//	debug  - Detailed diagnostic information
//	info   - General operational information (default)
//	warn   - Warning conditions that should be addressed
//	error  - Error conditions requiring attention
//	fatal  - Fatal errors that terminate the program
//
// # Structured Logging
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().
//	    Str("analysis", "finance").
//	    Int("orders", orderCount).
//	    Dur("elapsed", duration).
//	    Msg("Analysis finished")
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	uploadLogger := logging.WithComponent("upload")
//	uploadLogger.Info().Msg("Starting ingest")
//
// # Context-Aware Logging
//
// Request and correlation IDs stored in a context.Context are attached
// automatically:
//
//	logger := logging.Ctx(ctx)
//	logger.Info().Msg("Processing request")
//
// # slog Adapter
//
// The package provides an slog adapter for libraries that require slog.Logger,
// such as the suture supervision tree:
//
//	slogLogger := logging.NewSlogLogger()
//
// # Testing
//
// Tests can capture log output with NewTestLogger:
//
//	var buf bytes.Buffer
//	logging.NewTestLogger(&buf)
package logging
