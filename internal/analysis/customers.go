// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"context"
	"sort"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/warehouse"
)

// Buyer segments by order count.
const (
	SegmentNew        = "New"        // 1 order
	SegmentOccasional = "Occasional" // 2-3 orders
	SegmentVIP        = "VIP"        // 4+ orders
)

// churnThreshold is how long since the last order before a buyer counts as
// at risk.
const churnThreshold = 90 * 24 * time.Hour

// Sentiment keyword lists, EN + FR. Matching is case-insensitive and
// substring-based, so "loved" hits "love" and "parfaite" hits "parfait".
var (
	positiveKeywords = []string{
		"love", "perfect", "beautiful", "amazing", "excellent", "great",
		"adorable", "magnifique", "parfait", "superbe", "adore", "rapide",
	}
	negativeKeywords = []string{
		"broken", "disappointed", "late", "slow", "poor", "damaged", "wrong",
		"déçu", "cassé", "retard", "lent", "abîmé",
	}
)

var (
	positiveMatcher = cache.NewKeywordMatcher(positiveKeywords)
	negativeMatcher = cache.NewKeywordMatcher(negativeKeywords)
)

// BuyerStat is one buyer's retention profile.
type BuyerStat struct {
	Buyer          string    `json:"buyer"`
	Orders         int       `json:"orders"`
	TotalSpent     float64   `json:"total_spent"`
	FirstOrder     time.Time `json:"first_order"`
	LastOrder      time.Time `json:"last_order"`
	AvgDaysBetween float64   `json:"avg_days_between"` // 0 for single-order buyers
	Segment        string    `json:"segment"`
	ChurnRisk      bool      `json:"churn_risk"`
}

// SentimentSummary is the review sentiment block.
type SentimentSummary struct {
	Reviews    int         `json:"reviews"`
	Positive   int         `json:"positive"`
	Negative   int         `json:"negative"`
	Neutral    int         `json:"neutral"`
	AvgStars   float64     `json:"avg_stars"`
	StarCounts [5]int      `json:"star_counts"` // index 0 = 1 star
	TopWords   []WordCount `json:"top_words"`
}

// ShippingDelay summarizes paid-to-shipped turnaround.
type ShippingDelay struct {
	Shipments  int     `json:"shipments"`
	MeanDays   float64 `json:"mean_days"`
	MedianDays float64 `json:"median_days"`
}

// CustomersReport is the full customer-intelligence dashboard payload.
type CustomersReport struct {
	Countries     []warehouse.CountryStats `json:"countries"`
	TopCities     []warehouse.CityCount    `json:"top_cities"`
	Buyers        []BuyerStat              `json:"buyers"` // Repeat buyers, LTV desc
	SegmentCounts map[string]int           `json:"segment_counts"`
	ChurnRisk     int                      `json:"churn_risk"`
	Sentiment     SentimentSummary         `json:"sentiment"`
	Shipping      ShippingDelay            `json:"shipping"`
}

const (
	topCitiesPerCountry = 3
	topCitiesOverall    = 10
	topReviewWords      = 20
)

// Customers computes the customer-intelligence dashboard. Churn risk is
// measured against asOf, normally the upload's last sale date, so the same
// upload always produces the same report.
func Customers(ctx context.Context, rows []dataset.SaleRow, reviews []dataset.Review, asOf time.Time) (*CustomersReport, error) {
	w, err := warehouse.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	if err := w.Load(ctx, rows); err != nil {
		return nil, err
	}

	countries, err := w.CountryBreakdown(ctx, topCitiesPerCountry)
	if err != nil {
		return nil, err
	}

	report := &CustomersReport{
		Countries:     countries,
		TopCities:     topCities(rows, topCitiesOverall),
		SegmentCounts: map[string]int{SegmentNew: 0, SegmentOccasional: 0, SegmentVIP: 0},
		Sentiment:     sentiment(reviews),
		Shipping:      shippingDelay(rows),
	}

	buyers := buyerStats(rows, asOf)
	for _, b := range buyers {
		report.SegmentCounts[b.Segment]++
		if b.ChurnRisk {
			report.ChurnRisk++
		}
		if b.Orders > 1 {
			report.Buyers = append(report.Buyers, b)
		}
	}
	sort.Slice(report.Buyers, func(i, j int) bool {
		return report.Buyers[i].TotalSpent > report.Buyers[j].TotalSpent
	})

	return report, nil
}

func topCities(rows []dataset.SaleRow, limit int) []warehouse.CityCount {
	counts := make(map[string]int)
	for _, r := range rows {
		if r.City != "" {
			counts[r.City]++
		}
	}

	cities := make([]warehouse.CityCount, 0, len(counts))
	for city, orders := range counts {
		cities = append(cities, warehouse.CityCount{City: city, Orders: orders})
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Orders != cities[j].Orders {
			return cities[i].Orders > cities[j].Orders
		}
		return cities[i].City < cities[j].City
	})

	if len(cities) > limit {
		cities = cities[:limit]
	}
	return cities
}

func buyerStats(rows []dataset.SaleRow, asOf time.Time) []BuyerStat {
	byBuyer := make(map[string]*BuyerStat)
	for _, r := range rows {
		if r.Buyer == "" {
			continue
		}

		b, known := byBuyer[r.Buyer]
		if !known {
			b = &BuyerStat{Buyer: r.Buyer, FirstOrder: r.Date, LastOrder: r.Date}
			byBuyer[r.Buyer] = b
		}

		b.Orders++
		b.TotalSpent += r.Price * float64(r.Quantity)
		if r.Date.Before(b.FirstOrder) {
			b.FirstOrder = r.Date
		}
		if r.Date.After(b.LastOrder) {
			b.LastOrder = r.Date
		}
	}

	buyers := make([]BuyerStat, 0, len(byBuyer))
	for _, b := range byBuyer {
		if b.Orders > 1 {
			span := b.LastOrder.Sub(b.FirstOrder)
			b.AvgDaysBetween = span.Hours() / 24 / float64(b.Orders-1)
		}

		switch {
		case b.Orders > 3:
			b.Segment = SegmentVIP
		case b.Orders > 1:
			b.Segment = SegmentOccasional
		default:
			b.Segment = SegmentNew
		}

		b.ChurnRisk = asOf.Sub(b.LastOrder) > churnThreshold
		buyers = append(buyers, *b)
	}
	return buyers
}

// sentiment classifies each review by keyword hits: more positive than
// negative matches counts positive, the reverse negative, ties (including
// zero hits) neutral.
func sentiment(reviews []dataset.Review) SentimentSummary {
	s := SentimentSummary{Reviews: len(reviews)}

	texts := make([]string, 0, len(reviews))
	var starSum, starCount int
	for _, r := range reviews {
		if r.Message != "" {
			texts = append(texts, r.Message)
		}
		if r.Stars >= 1 && r.Stars <= 5 {
			s.StarCounts[r.Stars-1]++
			starSum += r.Stars
			starCount++
		}

		pos := len(positiveMatcher.Search(r.Message))
		neg := len(negativeMatcher.Search(r.Message))
		switch {
		case pos > neg:
			s.Positive++
		case neg > pos:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	if starCount > 0 {
		s.AvgStars = float64(starSum) / float64(starCount)
	}
	s.TopWords = topWords(texts, topReviewWords)
	return s
}

func shippingDelay(rows []dataset.SaleRow) ShippingDelay {
	var days []float64
	for _, r := range rows {
		if r.DatePaid.IsZero() || r.DateShipped.IsZero() {
			continue
		}
		d := r.DateShipped.Sub(r.DatePaid).Hours() / 24
		if d < 0 {
			continue
		}
		days = append(days, d)
	}

	out := ShippingDelay{Shipments: len(days)}
	if len(days) == 0 {
		return out
	}

	var sum float64
	for _, d := range days {
		sum += d
	}
	out.MeanDays = sum / float64(len(days))

	sort.Float64s(days)
	mid := len(days) / 2
	if len(days)%2 == 1 {
		out.MedianDays = days[mid]
	} else {
		out.MedianDays = (days[mid-1] + days[mid]) / 2
	}
	return out
}
