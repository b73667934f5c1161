// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package seo builds the page metadata the public landing pages compete on:
// meta tags, Open Graph, JSON-LD structured data, and the optional
// third-party analytics snippets.
package seo

import (
	"strings"
)

// Meta is the per-page head metadata consumed by the base template.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string // Empty means index,follow

	OGTitle       string
	OGDescription string
	OGType        string // website or article
	OGURL         string
	OGImage       string

	TwitterCard string // summary or summary_large_image

	JSONLD []string // Pre-rendered JSON-LD blocks, injected verbatim
}

// KeywordsContent joins keywords for the meta tag.
func (m Meta) KeywordsContent() string {
	return strings.Join(m.Keywords, ", ")
}

// withDefaults fills the OG/Twitter fields from the primary ones so presets
// only spell out what differs.
func (m Meta) withDefaults(baseURL, path string) Meta {
	if m.Canonical == "" {
		m.Canonical = strings.TrimSuffix(baseURL, "/") + path
	}
	if m.OGTitle == "" {
		m.OGTitle = m.Title
	}
	if m.OGDescription == "" {
		m.OGDescription = m.Description
	}
	if m.OGType == "" {
		m.OGType = "website"
	}
	if m.OGURL == "" {
		m.OGURL = m.Canonical
	}
	if m.TwitterCard == "" {
		m.TwitterCard = "summary_large_image"
	}
	return m
}
