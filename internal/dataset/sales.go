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
	"time"
)

// Canonical field names resolved from CSV header aliases.
const (
	fieldDate        = "date"
	fieldProduct     = "product"
	fieldPrice       = "price"
	fieldQuantity    = "quantity"
	fieldShipping    = "shipping"
	fieldCost        = "cost"
	fieldCountry     = "country"
	fieldCity        = "city"
	fieldBuyer       = "buyer"
	fieldOrderID     = "order_id"
	fieldDatePaid    = "date_paid"
	fieldDateShipped = "date_shipped"
	fieldTitle       = "title"
	fieldTags        = "tags"
	fieldViews       = "views"
	fieldFavorites   = "favorites"
)

// headerAliases maps lowercased header names to canonical fields. Etsy's
// exports changed column names over the years and ship localized (the FR
// shop exports are common enough to matter), so each field accepts several
// spellings.
var headerAliases = map[string]string{
	"sale date":         fieldDate,
	"order date":        fieldDate,
	"date":              fieldDate,
	"date de vente":     fieldDate,
	"date de commande":  fieldDate,
	"item name":         fieldProduct,
	"product":           fieldProduct,
	"titre":             fieldProduct,
	"article":           fieldProduct,
	"item price":        fieldPrice,
	"sale price":        fieldPrice,
	"price":             fieldPrice,
	"prix":              fieldPrice,
	"quantity":          fieldQuantity,
	"items":             fieldQuantity,
	"quantité":          fieldQuantity,
	"shipping":          fieldShipping,
	"shipping price":    fieldShipping,
	"frais de port":     fieldShipping,
	"livraison":         fieldShipping,
	"cost":              fieldCost,
	"production cost":   fieldCost,
	"coût":              fieldCost,
	"ship country":      fieldCountry,
	"country":           fieldCountry,
	"pays":              fieldCountry,
	"ship city":         fieldCity,
	"city":              fieldCity,
	"ville":             fieldCity,
	"buyer":             fieldBuyer,
	"buyer user id":     fieldBuyer,
	"acheteur":          fieldBuyer,
	"order id":          fieldOrderID,
	"transaction id":    fieldOrderID,
	"commande":          fieldOrderID,
	"date paid":         fieldDatePaid,
	"date shipped":      fieldDateShipped,
	"date d'expédition": fieldDateShipped,

	// Listings CSV
	"title":     fieldTitle,
	"tags":      fieldTags,
	"views":     fieldViews,
	"visits":    fieldViews,
	"favorites": fieldFavorites,
}

// "Title" in a listings file means the listing title; in a sales file it is
// the product name. resolveColumns keeps both by letting Title map to
// product when no product column exists.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		field, known := headerAliases[key]
		if !known {
			continue
		}
		if _, taken := cols[field]; !taken {
			cols[field] = i
		}
	}

	if _, hasProduct := cols[fieldProduct]; !hasProduct {
		if i, hasTitle := cols[fieldTitle]; hasTitle {
			cols[fieldProduct] = i
		}
	}

	return cols
}

// SaleRow is one cleaned sales record, ready for analysis.
type SaleRow struct {
	Date        time.Time
	Product     string
	Price       float64
	Quantity    int
	Shipping    float64
	Cost        float64
	Country     string
	City        string
	Buyer       string
	OrderID     string
	DatePaid    time.Time // Zero when the export has no paid date
	DateShipped time.Time // Zero when the export has no shipped date
}

// ParseReport summarizes what row cleaning kept and dropped.
type ParseReport struct {
	TotalRows   int
	KeptRows    int
	DroppedRows int
}

// dateLayouts are tried in order. US layouts first (Etsy's default export
// locale), ISO next, then DD/MM/YYYY as the European fallback.
var dateLayouts = []string{
	"01/02/06",
	"01/02/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseSales decodes and cleans a sales CSV (sold_items, payments, or
// sold_orders). Rows with an unparseable date or price, or a price <= 0,
// are dropped; Quantity defaults to 1 and Shipping/Cost default to 0.
func ParseSales(kind Kind, data []byte) ([]SaleRow, ParseReport, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, ParseReport{}, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // Etsy exports have ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ParseReport{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ParseReport{}, fmt.Errorf("%s: empty file", kind)
	}

	header := records[0]
	if err := Validate(kind, header); err != nil {
		return nil, ParseReport{}, err
	}
	cols := resolveColumns(header)

	report := ParseReport{TotalRows: len(records) - 1}
	rows := make([]SaleRow, 0, report.TotalRows)

	for _, record := range records[1:] {
		row, ok := cleanRow(cols, record)
		if !ok {
			report.DroppedRows++
			continue
		}
		rows = append(rows, row)
	}

	report.KeptRows = len(rows)
	return rows, report, nil
}

// cleanRow maps one CSV record onto a SaleRow, applying the drop rules and
// defaults. ok is false when the row is unusable.
func cleanRow(cols map[string]int, record []string) (SaleRow, bool) {
	get := func(field string) string {
		i, found := cols[field]
		if !found || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseDate(get(fieldDate))
	if err != nil {
		return SaleRow{}, false
	}

	price, err := parseMoney(get(fieldPrice))
	if err != nil || price <= 0 {
		return SaleRow{}, false
	}

	row := SaleRow{
		Date:    date,
		Product: get(fieldProduct),
		Price:   price,
		Country: strings.ToUpper(get(fieldCountry)),
		City:    get(fieldCity),
		Buyer:   get(fieldBuyer),
		OrderID: get(fieldOrderID),
	}

	row.Quantity = 1
	if q, err := strconv.Atoi(get(fieldQuantity)); err == nil && q > 0 {
		row.Quantity = q
	}
	if v, err := parseMoney(get(fieldShipping)); err == nil {
		row.Shipping = v
	}
	if v, err := parseMoney(get(fieldCost)); err == nil {
		row.Cost = v
	}
	if d, err := parseDate(get(fieldDatePaid)); err == nil {
		row.DatePaid = d
	}
	if d, err := parseDate(get(fieldDateShipped)); err == nil {
		row.DateShipped = d
	}

	return row, true
}

// currencyReplacer strips currency symbols and spacing from money fields
// before numeric parsing. Separators are handled afterwards.
var currencyReplacer = strings.NewReplacer(
	"$", "", "€", "", "£", "", "C$", "", "A$", "",
	"USD", "", "EUR", "", "US", "",
	" ", "", " ", "",
)

func parseMoney(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty money value")
	}

	cleaned := currencyReplacer.Replace(s)

	// "1,234.56" uses commas as thousands separators; "12,50" (FR exports)
	// uses the comma as the decimal separator. A single comma with no dot
	// and at most two trailing digits is decimal.
	if strings.Contains(cleaned, ",") {
		if parts := strings.SplitN(cleaned, ",", 2); !strings.Contains(cleaned, ".") &&
			strings.Count(cleaned, ",") == 1 && len(parts[1]) <= 2 {
			cleaned = parts[0] + "." + parts[1]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", s, err)
	}
	return v, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
