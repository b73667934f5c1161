// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Review is one buyer review from the reviews JSON export.
type Review struct {
	Reviewer     string
	Date         time.Time // Zero when the export has no date
	Stars        int       // 1-5; 0 when missing
	Message      string
	ListingTitle string
}

// rawReview tolerates the field-name drift across export versions. Exports
// from different tools use rating/stars/note and review/text/message/comment
// interchangeably.
type rawReview struct {
	Reviewer string `json:"reviewer"`
	Buyer    string `json:"buyer"`

	Date    string `json:"date"`
	DateAlt string `json:"review_date"`

	Rating json.RawMessage `json:"rating"`
	Stars  json.RawMessage `json:"stars"`
	Note   json.RawMessage `json:"note"`

	Review  string `json:"review"`
	Text    string `json:"text"`
	Message string `json:"message"`
	Comment string `json:"comment"`

	ListingTitle string `json:"listing_title"`
	Listing      string `json:"listing"`
	Title        string `json:"title"`
}

// ParseReviews decodes a reviews JSON export: an array of review objects
// with tolerant field aliases. Entries without any usable content (no
// rating and no text) are dropped.
func ParseReviews(data []byte) ([]Review, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}

	var raw []rawReview
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("reviews: expected a JSON array of review objects: %w", err)
	}

	reviews := make([]Review, 0, len(raw))
	for _, r := range raw {
		review := Review{
			Reviewer:     firstNonEmpty(r.Reviewer, r.Buyer),
			Stars:        parseStars(r.Rating, r.Stars, r.Note),
			Message:      firstNonEmpty(r.Review, r.Text, r.Message, r.Comment),
			ListingTitle: firstNonEmpty(r.ListingTitle, r.Listing, r.Title),
		}

		if d, err := parseDate(firstNonEmpty(r.Date, r.DateAlt)); err == nil {
			review.Date = d
		}

		if review.Stars == 0 && review.Message == "" {
			continue
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// parseStars extracts a 1-5 star rating from whichever alias is set.
// Ratings arrive as numbers or as strings ("5", "4.0"); out-of-range values
// are clamped.
func parseStars(candidates ...json.RawMessage) int {
	for _, raw := range candidates {
		if len(raw) == 0 {
			continue
		}

		var asFloat float64
		if err := json.Unmarshal(raw, &asFloat); err != nil {
			var asString string
			if err := json.Unmarshal(raw, &asString); err != nil {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
			if err != nil {
				continue
			}
			asFloat = parsed
		}

		stars := int(asFloat)
		if stars < 1 {
			continue
		}
		if stars > 5 {
			stars = 5
		}
		return stars
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
