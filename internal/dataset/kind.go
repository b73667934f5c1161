// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seller export files the product accepts.
type Kind string

// The five dataset kinds, matching Etsy's seller CSV/JSON exports.
const (
	KindSoldItems  Kind = "sold_items"
	KindPayments   Kind = "payments"
	KindSoldOrders Kind = "sold_orders"
	KindReviews    Kind = "reviews"
	KindListings   Kind = "listings"
)

// Kinds lists every accepted kind in upload-page order.
var Kinds = []Kind{KindSoldItems, KindPayments, KindSoldOrders, KindReviews, KindListings}

// ParseKind validates a kind string from a form field.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown dataset kind %q", s)
}

// Ext returns the expected file extension for archived copies of this kind.
func (k Kind) Ext() string {
	if k == KindReviews {
		return "json"
	}
	return "csv"
}

// Label returns the human-readable name shown on the upload page.
func (k Kind) Label() string {
	switch k {
	case KindSoldItems:
		return "Sold items (CSV)"
	case KindPayments:
		return "Payments (CSV)"
	case KindSoldOrders:
		return "Sold orders (CSV)"
	case KindReviews:
		return "Reviews (JSON)"
	case KindListings:
		return "Listings (CSV)"
	}
	return string(k)
}

// requiredFields maps each CSV kind to the canonical fields its header must
// resolve. Reviews are JSON and validated during parsing instead.
var requiredFields = map[Kind][]string{
	KindSoldItems:  {fieldDate, fieldProduct, fieldPrice},
	KindPayments:   {fieldDate, fieldPrice},
	KindSoldOrders: {fieldDate, fieldPrice},
	KindListings:   {fieldTitle},
}

// MissingColumnsError reports which required columns a CSV header failed to
// resolve, so the upload page can list them inline.
type MissingColumnsError struct {
	Kind    Kind
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Kind, strings.Join(e.Missing, ", "))
}

// Validate checks a CSV header against the kind's required fields, using the
// same alias resolution as parsing. A nil error means parsing can proceed.
func Validate(kind Kind, header []string) error {
	required, ok := requiredFields[kind]
	if !ok {
		return nil
	}

	cols := resolveColumns(header)

	var missing []string
	for _, field := range required {
		if _, found := cols[field]; !found {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Kind: kind, Missing: missing}
	}
	return nil
}
