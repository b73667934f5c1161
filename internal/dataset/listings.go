// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Listing is one shop listing from the listings CSV export.
type Listing struct {
	Title     string
	Price     float64
	Tags      []string // Lowercased, trimmed, order preserved
	Views     int
	Favorites int
}

// ParseListings decodes a listings CSV. Rows without a title are dropped;
// tags split on commas or semicolons and are lowercased.
func ParseListings(data []byte) ([]Listing, ParseReport, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, ParseReport{}, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ParseReport{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ParseReport{}, fmt.Errorf("%s: empty file", KindListings)
	}

	header := records[0]
	if err := Validate(KindListings, header); err != nil {
		return nil, ParseReport{}, err
	}
	cols := resolveColumns(header)

	report := ParseReport{TotalRows: len(records) - 1}
	listings := make([]Listing, 0, report.TotalRows)

	for _, record := range records[1:] {
		get := func(field string) string {
			i, found := cols[field]
			if !found || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		title := get(fieldTitle)
		if title == "" {
			report.DroppedRows++
			continue
		}

		listing := Listing{
			Title: title,
			Tags:  SplitTags(get(fieldTags)),
		}
		if v, err := parseMoney(get(fieldPrice)); err == nil {
			listing.Price = v
		}
		if v, err := strconv.Atoi(get(fieldViews)); err == nil && v >= 0 {
			listing.Views = v
		}
		if v, err := strconv.Atoi(get(fieldFavorites)); err == nil && v >= 0 {
			listing.Favorites = v
		}

		listings = append(listings, listing)
	}

	report.KeptRows = len(listings)
	return listings, report, nil
}

// SplitTags splits a tag list on commas or semicolons, lowercasing and
// trimming each tag. Empty tags are dropped.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}

	splitter := func(r rune) bool { return r == ',' || r == ';' }

	var tags []string
	for _, tag := range strings.FieldsFunc(s, splitter) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
