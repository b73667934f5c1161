// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

// ===== Retention Segments =====

func TestCustomersSegmentsAndChurn(t *testing.T) {
	asOf := day(28)
	old := asOf.AddDate(0, 0, -120)

	rows := []dataset.SaleRow{
		// VIP: 4 orders, recent.
		{Date: day(1), Product: "Mug", Price: 20, Quantity: 1, Buyer: "vip"},
		{Date: day(8), Product: "Mug", Price: 20, Quantity: 1, Buyer: "vip"},
		{Date: day(15), Product: "Mug", Price: 20, Quantity: 1, Buyer: "vip"},
		{Date: day(22), Product: "Mug", Price: 20, Quantity: 1, Buyer: "vip"},
		// Occasional: 2 orders.
		{Date: day(5), Product: "Bag", Price: 30, Quantity: 1, Buyer: "occ"},
		{Date: day(20), Product: "Bag", Price: 30, Quantity: 1, Buyer: "occ"},
		// New and churned: single order 120 days before asOf.
		{Date: old, Product: "Print", Price: 10, Quantity: 1, Buyer: "gone"},
	}

	report, err := Customers(context.Background(), rows, nil, asOf)
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}

	if report.SegmentCounts[SegmentVIP] != 1 ||
		report.SegmentCounts[SegmentOccasional] != 1 ||
		report.SegmentCounts[SegmentNew] != 1 {
		t.Errorf("segments = %v", report.SegmentCounts)
	}
	if report.ChurnRisk != 1 {
		t.Errorf("churn risk = %d, want 1", report.ChurnRisk)
	}

	// Repeat buyers only, LTV desc: vip (80) then occ (60).
	if len(report.Buyers) != 2 || report.Buyers[0].Buyer != "vip" {
		t.Fatalf("buyers = %+v", report.Buyers)
	}
	if !almostEqual(report.Buyers[0].TotalSpent, 80) {
		t.Errorf("vip LTV = %v, want 80", report.Buyers[0].TotalSpent)
	}
	if !almostEqual(report.Buyers[0].AvgDaysBetween, 7) {
		t.Errorf("vip avg gap = %v, want 7", report.Buyers[0].AvgDaysBetween)
	}
}

// ===== Geography =====

func TestCustomersGeography(t *testing.T) {
	rows := []dataset.SaleRow{
		{Date: day(1), Product: "Mug", Price: 20, Quantity: 1, Country: "FR", City: "Paris", Buyer: "a"},
		{Date: day(2), Product: "Mug", Price: 20, Quantity: 1, Country: "FR", City: "Paris", Buyer: "b"},
		{Date: day(3), Product: "Mug", Price: 50, Quantity: 1, Country: "US", City: "Austin", Buyer: "c"},
	}

	report, err := Customers(context.Background(), rows, nil, day(3))
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}

	if len(report.Countries) != 2 || report.Countries[0].Country != "US" {
		t.Errorf("countries = %+v, want US first by revenue", report.Countries)
	}
	if len(report.TopCities) != 2 || report.TopCities[0].City != "Paris" || report.TopCities[0].Orders != 2 {
		t.Errorf("top cities = %+v", report.TopCities)
	}
}

// ===== Review Sentiment =====

func TestSentimentClassification(t *testing.T) {
	reviews := []dataset.Review{
		{Stars: 5, Message: "I love it, absolutely perfect"},
		{Stars: 5, Message: "Livraison rapide, produit magnifique"},
		{Stars: 1, Message: "Arrived broken and late"},
		{Stars: 2, Message: "Très déçu de cet achat"},
		{Stars: 3, Message: "It is a mug"},
	}

	s := sentiment(reviews)

	if s.Positive != 2 || s.Negative != 2 || s.Neutral != 1 {
		t.Errorf("sentiment = +%d/-%d/=%d, want 2/2/1", s.Positive, s.Negative, s.Neutral)
	}
	if !almostEqual(s.AvgStars, 3.2) {
		t.Errorf("avg stars = %v, want 3.2", s.AvgStars)
	}
	if s.StarCounts[4] != 2 || s.StarCounts[0] != 1 {
		t.Errorf("star counts = %v", s.StarCounts)
	}
}

func TestSentimentMixedReviewCountsByMajority(t *testing.T) {
	s := sentiment([]dataset.Review{
		{Stars: 3, Message: "beautiful but arrived broken and late"},
	})
	if s.Negative != 1 {
		t.Errorf("mixed review = %+v, want negative (2 hits vs 1)", s)
	}
}

// ===== Word Frequency =====

func TestTopWordsFiltersStopwordsAndShortTokens(t *testing.T) {
	words := topWords([]string{
		"Gorgeous mug, gorgeous glaze, very well made for this shop",
	}, 20)

	for _, w := range words {
		if len([]rune(w.Word)) <= 3 {
			t.Errorf("short token kept: %q", w.Word)
		}
		if stopwords[w.Word] {
			t.Errorf("stopword kept: %q", w.Word)
		}
	}

	if len(words) == 0 || words[0].Word != "gorgeous" || words[0].Count != 2 {
		t.Errorf("top word = %+v, want gorgeous x2", words)
	}
}

// ===== Shipping Delay =====

func TestShippingDelay(t *testing.T) {
	paid := day(1)
	rows := []dataset.SaleRow{
		{DatePaid: paid, DateShipped: paid.AddDate(0, 0, 1)},
		{DatePaid: paid, DateShipped: paid.AddDate(0, 0, 3)},
		{DatePaid: paid, DateShipped: paid.AddDate(0, 0, 8)},
		{DatePaid: paid.AddDate(0, 0, 5), DateShipped: paid}, // Negative: discarded
		{DatePaid: paid},                                     // Never shipped: skipped
	}

	d := shippingDelay(rows)
	if d.Shipments != 3 {
		t.Fatalf("shipments = %d, want 3", d.Shipments)
	}
	if !almostEqual(d.MeanDays, 4) || !almostEqual(d.MedianDays, 3) {
		t.Errorf("mean/median = %v/%v, want 4/3", d.MeanDays, d.MedianDays)
	}
}

// Churn threshold sanity: a buyer active within 90 days is not at risk.
func TestChurnBoundary(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	buyers := buyerStats([]dataset.SaleRow{
		{Date: asOf.AddDate(0, 0, -89), Buyer: "recent", Price: 10, Quantity: 1},
		{Date: asOf.AddDate(0, 0, -91), Buyer: "stale", Price: 10, Quantity: 1},
	}, asOf)

	for _, b := range buyers {
		switch b.Buyer {
		case "recent":
			if b.ChurnRisk {
				t.Error("recent buyer flagged as churn risk")
			}
		case "stale":
			if !b.ChurnRisk {
				t.Error("stale buyer not flagged")
			}
		}
	}
}
