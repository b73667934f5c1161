// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

// Title score grades.
const (
	GradeExcellent = "Excellent" // >= 80
	GradeGood      = "Good"      // >= 60
	GradeAverage   = "Average"   // >= 40
	GradeLow       = "Low"
)

// highValueTerms are the title terms Etsy search rewards. Two or more
// distinct terms score full points.
var highValueTerms = []string{
	"handmade", "gift", "vintage", "custom", "personalized", "unique",
	"jewelry", "art", "home", "decor", "wedding",
}

var highValueMatcher = cache.NewKeywordMatcher(highValueTerms)

// targetTagCount is Etsy's tag limit; listings should use all of it.
const targetTagCount = 13

// ListingScore is one listing's SEO evaluation.
type ListingScore struct {
	Title    string   `json:"title"`
	Score    int      `json:"score"`
	Grade    string   `json:"grade"`
	Terms    []string `json:"terms,omitempty"` // High-value terms found
	TagCount int      `json:"tag_count"`
	Revenue  float64  `json:"revenue"` // From the sales join; 0 when unmatched
	Matched  bool     `json:"matched"` // Whether a sales row matched the title
}

// TagStats summarizes tag usage across the shop.
type TagStats struct {
	AvgPerListing    float64  `json:"avg_per_listing"`
	TargetPerListing int      `json:"target_per_listing"`
	Duplicates       []string `json:"duplicates,omitempty"` // Tags used on 2+ listings
	SingleWordShare  float64  `json:"single_word_share"`    // Fraction of tags with one word
}

// BandRevenue is revenue attributed to one score grade.
type BandRevenue struct {
	Grade    string  `json:"grade"`
	Listings int     `json:"listings"`
	Revenue  float64 `json:"revenue"`
}

// SEOReport is the full SEO dashboard payload.
type SEOReport struct {
	Listings      []ListingScore `json:"listings"` // Score desc
	AvgScore      float64        `json:"avg_score"`
	GradeCounts   map[string]int `json:"grade_counts"`
	Tags          TagStats       `json:"tags"`
	TitleKeywords []WordCount    `json:"title_keywords"` // Top 15 across titles
	BandRevenues  []BandRevenue  `json:"band_revenues"`
	Underselling  []ListingScore `json:"underselling"`  // High score, low sales
	Overachieving []ListingScore `json:"overachieving"` // Low score, high sales
}

const topTitleKeywords = 15

// SEOListings scores every listing title and joins listings back to sales by
// exact title match (case-insensitive).
func SEOListings(listings []dataset.Listing, sales []dataset.SaleRow) *SEOReport {
	revenueByTitle := make(map[string]float64)
	for _, s := range sales {
		if s.Product != "" {
			revenueByTitle[strings.ToLower(s.Product)] += s.Price * float64(s.Quantity)
		}
	}

	report := &SEOReport{
		GradeCounts: map[string]int{GradeExcellent: 0, GradeGood: 0, GradeAverage: 0, GradeLow: 0},
	}

	titles := make([]string, 0, len(listings))
	var scoreSum int
	for _, l := range listings {
		titles = append(titles, l.Title)

		score := TitleScore(l.Title)
		ls := ListingScore{
			Title:    l.Title,
			Score:    score,
			Grade:    Grade(score),
			Terms:    highValueMatcher.DistinctKeywords(l.Title),
			TagCount: len(l.Tags),
		}
		if revenue, matched := revenueByTitle[strings.ToLower(l.Title)]; matched {
			ls.Revenue = revenue
			ls.Matched = true
		}

		scoreSum += score
		report.GradeCounts[ls.Grade]++
		report.Listings = append(report.Listings, ls)
	}

	sort.Slice(report.Listings, func(i, j int) bool {
		if report.Listings[i].Score != report.Listings[j].Score {
			return report.Listings[i].Score > report.Listings[j].Score
		}
		return report.Listings[i].Title < report.Listings[j].Title
	})

	if len(listings) > 0 {
		report.AvgScore = float64(scoreSum) / float64(len(listings))
	}
	report.Tags = tagStats(listings)
	report.TitleKeywords = topWords(titles, topTitleKeywords)
	report.BandRevenues = bandRevenues(report.Listings)
	report.Underselling, report.Overachieving = salesMismatches(report.Listings)

	return report
}

// TitleScore rates a listing title 0-100:
//   - length: 100-140 chars +30, 80-99 +20, over 140 +15, under 80 +10
//   - comma-separated keyword phrases: 3+ +25, 2 +15, fewer +5
//   - high-value terms: 2+ distinct +25, 1 +15, none +5
//   - emoji +10, uppercase first rune +10
func TitleScore(title string) int {
	score := 0

	switch n := len([]rune(title)); {
	case n >= 100 && n <= 140:
		score += 30
	case n >= 80 && n < 100:
		score += 20
	case n > 140:
		score += 15
	default:
		score += 10
	}

	phrases := 0
	for _, p := range strings.Split(title, ",") {
		if strings.TrimSpace(p) != "" {
			phrases++
		}
	}
	switch {
	case phrases >= 3:
		score += 25
	case phrases == 2:
		score += 15
	default:
		score += 5
	}

	switch terms := len(highValueMatcher.DistinctKeywords(title)); {
	case terms >= 2:
		score += 25
	case terms == 1:
		score += 15
	default:
		score += 5
	}

	if containsEmoji(title) {
		score += 10
	}
	if first := firstRune(title); unicode.IsUpper(first) {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Grade maps a title score to its display band.
func Grade(score int) string {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeGood
	case score >= 40:
		return GradeAverage
	default:
		return GradeLow
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF) || (r >= 0x2B00 && r <= 0x2BFF) {
			return true
		}
	}
	return false
}

func tagStats(listings []dataset.Listing) TagStats {
	stats := TagStats{TargetPerListing: targetTagCount}
	if len(listings) == 0 {
		return stats
	}

	usage := make(map[string]int)
	var tagTotal, singleWord int
	for _, l := range listings {
		tagTotal += len(l.Tags)
		for _, tag := range l.Tags {
			usage[tag]++
			if !strings.Contains(tag, " ") {
				singleWord++
			}
		}
	}

	stats.AvgPerListing = float64(tagTotal) / float64(len(listings))
	if tagTotal > 0 {
		stats.SingleWordShare = float64(singleWord) / float64(tagTotal)
	}

	for tag, n := range usage {
		if n > 1 {
			stats.Duplicates = append(stats.Duplicates, tag)
		}
	}
	sort.Strings(stats.Duplicates)

	return stats
}

func bandRevenues(listings []ListingScore) []BandRevenue {
	byGrade := map[string]*BandRevenue{}
	for _, l := range listings {
		band, known := byGrade[l.Grade]
		if !known {
			band = &BandRevenue{Grade: l.Grade}
			byGrade[l.Grade] = band
		}
		band.Listings++
		band.Revenue += l.Revenue
	}

	out := make([]BandRevenue, 0, len(byGrade))
	for _, grade := range []string{GradeExcellent, GradeGood, GradeAverage, GradeLow} {
		if band, known := byGrade[grade]; known {
			out = append(out, *band)
		}
	}
	return out
}

// salesMismatches flags listings whose score and sales disagree: a score of
// 80+ with revenue below the matched median undersells, a score under 40
// with revenue above it overachieves.
func salesMismatches(listings []ListingScore) (under, over []ListingScore) {
	var revenues []float64
	for _, l := range listings {
		if l.Matched {
			revenues = append(revenues, l.Revenue)
		}
	}
	if len(revenues) == 0 {
		return nil, nil
	}

	sort.Float64s(revenues)
	median := revenues[len(revenues)/2]
	if len(revenues)%2 == 0 {
		median = (revenues[len(revenues)/2-1] + revenues[len(revenues)/2]) / 2
	}

	for _, l := range listings {
		switch {
		case l.Score >= 80 && l.Revenue < median:
			under = append(under, l)
		case l.Score < 40 && l.Matched && l.Revenue > median:
			over = append(over, l)
		}
	}
	return under, over
}
