// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package seo

import (
	"github.com/goccy/go-json"

	"github.com/Brice601/etsydashboard-frontend/internal/logging"
)

// Published app rating shown in rich results. Updated manually when the
// review count moves meaningfully.
const (
	appRatingValue = "4.8"
	appRatingCount = 127
)

const schemaContext = "https://schema.org"

// FAQ is one question/answer pair for FAQPage markup.
type FAQ struct {
	Question string
	Answer   string
}

// HowToStep is one step in HowTo markup.
type HowToStep struct {
	Name string
	Text string
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Name string
	URL  string
}

// render marshals a JSON-LD document. Structured data is best-effort: a
// marshal failure logs and yields an empty block rather than a broken page.
func render(doc map[string]any) string {
	data, err := json.Marshal(doc)
	if err != nil {
		logging.Err(err).Msg("Failed to render JSON-LD block")
		return ""
	}
	return string(data)
}

// SoftwareApplication describes the product itself with its free offer and
// aggregate rating.
func SoftwareApplication(baseURL string) string {
	return render(map[string]any{
		"@context":            schemaContext,
		"@type":               "SoftwareApplication",
		"name":                "Etsy Dashboard",
		"url":                 baseURL,
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web",
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": appRatingValue,
			"ratingCount": appRatingCount,
		},
	})
}

// Product renders Product markup for a landing page offer.
func Product(name, description, url string, price string) string {
	return render(map[string]any{
		"@context":    schemaContext,
		"@type":       "Product",
		"name":        name,
		"description": description,
		"url":         url,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         price,
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
		},
	})
}

// FAQPage renders FAQPage markup from question/answer pairs.
func FAQPage(faqs []FAQ) string {
	entities := make([]map[string]any, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}

	return render(map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

// HowTo renders HowTo markup from ordered steps.
func HowTo(name string, steps []HowToStep) string {
	rendered := make([]map[string]any, 0, len(steps))
	for i, step := range steps {
		rendered = append(rendered, map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     step.Name,
			"text":     step.Text,
		})
	}

	return render(map[string]any{
		"@context": schemaContext,
		"@type":    "HowTo",
		"name":     name,
		"step":     rendered,
	})
}

// BreadcrumbList renders breadcrumb markup.
func BreadcrumbList(crumbs []Crumb) string {
	items := make([]map[string]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		})
	}

	return render(map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
