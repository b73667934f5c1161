// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are excluded from word-frequency counts. EN + FR, matching the
// two locales the review exports arrive in.
var stopwords = map[string]bool{
	// EN
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"very": true, "were": true, "they": true, "them": true, "your": true,
	"been": true, "will": true, "would": true, "could": true, "there": true,
	"their": true, "which": true, "about": true, "just": true, "also": true,
	"when": true, "what": true, "item": true, "order": true, "etsy": true,
	"seller": true, "shop": true, "really": true, "more": true, "than": true,
	// FR
	"pour": true, "avec": true, "dans": true, "cette": true, "tout": true,
	"tous": true, "mais": true, "plus": true, "très": true, "tres": true,
	"bien": true, "sont": true, "être": true, "etre": true, "fait": true,
	"elle": true, "vous": true, "nous": true, "comme": true, "merci": true,
	"commande": true, "article": true, "boutique": true,
}

// WordCount is one entry in a word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// tokenize lowercases text and splits it on non-letter runes, keeping tokens
// longer than 3 runes that are not stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > 3 && !stopwords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// topWords ranks tokens across texts by count, ties broken alphabetically,
// truncated to limit.
func topWords(texts []string, limit int) []WordCount {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, token := range tokenize(text) {
			counts[token]++
		}
	}

	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
