// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"reflect"
	"strings"
	"testing"
)

// ===== Listings Decoding =====

func TestParseListings(t *testing.T) {
	csvData := strings.Join([]string{
		"Title,Price,Tags,Views,Favorites",
		"Handmade Ceramic Mug,$24.99,\"mug, ceramic; Handmade\",150,12",
		",10.00,orphan,5,1",
		"Minimal Listing,,,,",
	}, "\n")

	listings, report, err := ParseListings([]byte(csvData))
	if err != nil {
		t.Fatalf("ParseListings: %v", err)
	}

	if report.TotalRows != 3 || report.KeptRows != 2 || report.DroppedRows != 1 {
		t.Errorf("report = %+v, want 3 total / 2 kept / 1 dropped", report)
	}

	first := listings[0]
	if first.Title != "Handmade Ceramic Mug" || first.Price != 24.99 {
		t.Errorf("first listing = %+v", first)
	}
	if first.Views != 150 || first.Favorites != 12 {
		t.Errorf("first listing counts = %+v", first)
	}
	if want := []string{"mug", "ceramic", "handmade"}; !reflect.DeepEqual(first.Tags, want) {
		t.Errorf("tags = %v, want %v", first.Tags, want)
	}

	second := listings[1]
	if second.Title != "Minimal Listing" || second.Price != 0 || len(second.Tags) != 0 {
		t.Errorf("minimal listing = %+v", second)
	}
}

// ===== Tag Splitting =====

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"mug, ceramic, handmade", []string{"mug", "ceramic", "handmade"}},
		{"Mug;CERAMIC ; handmade", []string{"mug", "ceramic", "handmade"}},
		{" , ; ", nil},
		{"", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SplitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTags(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
