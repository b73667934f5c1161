// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package format provides display formatting for money, percentages, and
// text used by templates and API payloads. All functions are pure; templates
// call them through the renderer's funcmap.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps ISO currency codes to their display symbols.
// Codes without a symbol render as a "CODE " prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
}

// printer renders numbers with en-US grouping. Sellers see "1,234.56"
// regardless of the server locale.
var printer = message.NewPrinter(language.English)

// Currency formats an amount with its currency symbol, thousands separators,
// and two decimals. Negative amounts carry the sign before the symbol:
// Currency(-1234.5, "USD") == "-$1,234.50".
func Currency(amount float64, code string) string {
	symbol, known := currencySymbols[strings.ToUpper(code)]
	if !known {
		symbol = strings.ToUpper(code) + " "
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + symbol + printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Percentage formats a ratio as a percentage: Percentage(0.25, 1, false) ==
// "25.0%". withSign prefixes "+" for positive values, for deltas.
func Percentage(v float64, decimals int, withSign bool) string {
	s := printer.Sprint(number.Percent(v,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
	if withSign && v > 0 {
		return "+" + s
	}
	return s
}

// Number formats a value with thousands separators and a fixed number of
// decimals.
func Number(v float64, decimals int) string {
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// TruncateText shortens s to at most max runes, appending "..." when it
// truncates. Strings within the limit are returned unchanged.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// PercentageOf returns part/whole as a percentage, 0 when whole is 0.
func PercentageOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Margin returns the margin percentage for a revenue/cost pair, 0 when
// revenue is 0.
func Margin(revenue, cost float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// ROI returns the return-on-investment percentage, 0 when cost is 0.
func ROI(gain, cost float64) float64 {
	if cost == 0 {
		return 0
	}
	return (gain - cost) / cost * 100
}

// maxFilenameRunes bounds sanitized filenames. Long enough for any real
// export name, short enough for every filesystem.
const maxFilenameRunes = 128

// SanitizeFilename strips path separators and anything outside
// [A-Za-z0-9._-] from s, collapsing each invalid run to a single underscore
// and bounding the result length. An empty or fully-invalid input returns "_".
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastUnderscore := false
	for _, r := range s {
		valid := r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' ||
			r == '.' || r == '_' || r == '-'
		if valid {
			b.WriteRune(r)
			lastUnderscore = r == '_'
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	out := b.String()
	if out == "" {
		return "_"
	}

	runes := []rune(out)
	if len(runes) > maxFilenameRunes {
		out = string(runes[:maxFilenameRunes])
	}
	return out
}
