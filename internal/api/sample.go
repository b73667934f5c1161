// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

// Sample data rendered when a dashboard is opened before any upload. Small
// but shaped like a real shop: repeat buyers, two countries, a weak title.

func sampleDay(daysAgo int) time.Time {
	return time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

func sampleSales() []dataset.SaleRow {
	return []dataset.SaleRow{
		{Date: sampleDay(88), Product: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers", Price: 24, Quantity: 1, Shipping: 5, Cost: 8, Country: "US", City: "Portland", Buyer: "coffeekate", OrderID: "s-1", DatePaid: sampleDay(88), DateShipped: sampleDay(86)},
		{Date: sampleDay(74), Product: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers", Price: 24, Quantity: 2, Shipping: 5, Cost: 8, Country: "US", City: "Portland", Buyer: "coffeekate", OrderID: "s-2", DatePaid: sampleDay(74), DateShipped: sampleDay(71)},
		{Date: sampleDay(60), Product: "Linen Tote Bag", Price: 32, Quantity: 1, Shipping: 6, Cost: 14, Country: "FR", City: "Lyon", Buyer: "mariedubois", OrderID: "s-3", DatePaid: sampleDay(60), DateShipped: sampleDay(57)},
		{Date: sampleDay(45), Product: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers", Price: 24, Quantity: 1, Shipping: 5, Cost: 8, Country: "US", City: "Austin", Buyer: "jwray", OrderID: "s-4", DatePaid: sampleDay(45), DateShipped: sampleDay(44)},
		{Date: sampleDay(41), Product: "Linen Tote Bag", Price: 32, Quantity: 1, Shipping: 6, Cost: 14, Country: "FR", City: "Paris", Buyer: "mariedubois", OrderID: "s-5", DatePaid: sampleDay(41), DateShipped: sampleDay(38)},
		{Date: sampleDay(30), Product: "Custom Wedding Ring Dish, Unique Engagement Gift Keepsake", Price: 45, Quantity: 1, Shipping: 7, Cost: 12, Country: "US", City: "Portland", Buyer: "coffeekate", OrderID: "s-6", DatePaid: sampleDay(30), DateShipped: sampleDay(28)},
		{Date: sampleDay(18), Product: "Custom Wedding Ring Dish, Unique Engagement Gift Keepsake", Price: 45, Quantity: 1, Shipping: 7, Cost: 12, Country: "GB", City: "Bristol", Buyer: "ameliaw", OrderID: "s-7", DatePaid: sampleDay(18), DateShipped: sampleDay(15)},
		{Date: sampleDay(9), Product: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers", Price: 24, Quantity: 1, Shipping: 5, Cost: 8, Country: "US", City: "Austin", Buyer: "jwray", OrderID: "s-8", DatePaid: sampleDay(9), DateShipped: sampleDay(7)},
		{Date: sampleDay(3), Product: "Linen Tote Bag", Price: 32, Quantity: 2, Shipping: 6, Cost: 14, Country: "FR", City: "Lyon", Buyer: "clairebx", OrderID: "s-9", DatePaid: sampleDay(3), DateShipped: sampleDay(1)},
	}
}

func sampleReviews() []dataset.Review {
	return []dataset.Review{
		{Reviewer: "coffeekate", Stars: 5, Message: "Absolutely love it, the mug is beautiful and arrived fast.", Date: sampleDay(70), ListingTitle: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers"},
		{Reviewer: "mariedubois", Stars: 5, Message: "Parfait, magnifique qualité.", Date: sampleDay(50), ListingTitle: "Linen Tote Bag"},
		{Reviewer: "ameliaw", Stars: 4, Message: "Great gift, my sister adores it.", Date: sampleDay(25), ListingTitle: "Custom Wedding Ring Dish, Unique Engagement Gift Keepsake"},
		{Reviewer: "clairebx", Stars: 2, Message: "Shipping was slow and the box arrived damaged.", Date: sampleDay(8), ListingTitle: "Linen Tote Bag"},
	}
}

func sampleListings() []dataset.Listing {
	return []dataset.Listing{
		{
			Title: "Personalized Ceramic Mug, Handmade Gift for Coffee Lovers",
			Tags:  []string{"personalized mug", "handmade gift", "coffee lover gift", "ceramic mug", "custom mug"},
			Price: 24,
		},
		{
			Title: "Custom Wedding Ring Dish, Unique Engagement Gift Keepsake",
			Tags:  []string{"wedding gift", "ring dish", "engagement gift", "custom keepsake"},
			Price: 45,
		},
		{
			Title: "Linen Tote Bag",
			Tags:  []string{"tote", "bag", "linen"},
			Price: 32,
		},
	}
}
