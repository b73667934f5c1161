// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package cache

import (
	"strings"
	"sync"
)

// KeywordMatcher finds occurrences of a keyword set in a text using the
// Aho-Corasick automaton: O(n + m + z) for text length n, total pattern
// length m, and z matches, against O(n * patterns) for naive scanning.
//
// The customer-intelligence dashboard runs every review through two of
// these (positive and negative sentiment keywords, EN + FR); the SEO
// analyzer uses one for high-value title terms. Matching is
// case-insensitive.
//
// Example:
//
//	m := NewKeywordMatcher([]string{"love", "parfait"})
//	m.Contains("Absolutely love this mug") // true
type KeywordMatcher struct {
	mu       sync.RWMutex
	root     *acNode
	keywords []string
	built    bool
}

// acNode is a node in the automaton trie.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode // Longest proper suffix that is also a trie prefix
	output   []int   // Keyword indices ending at this node
}

// Match is one keyword occurrence in the scanned text.
type Match struct {
	Keyword  string
	Position int // Byte offset of the first rune of the match
}

// NewKeywordMatcher builds a matcher over the given keywords. Empty
// keywords are ignored.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	m := &KeywordMatcher{root: newACNode()}
	for _, kw := range keywords {
		m.add(kw)
	}
	m.build()
	return m
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

func (m *KeywordMatcher) add(keyword string) {
	if keyword == "" {
		return
	}
	m.keywords = append(m.keywords, keyword)
	m.built = false
}

// build constructs the trie and failure links. Called once from the
// constructor; keyword sets are fixed for the process lifetime.
func (m *KeywordMatcher) build() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.built {
		return
	}

	m.root = newACNode()
	for i, kw := range m.keywords {
		m.insert(i, strings.ToLower(kw))
	}
	m.buildFailureLinks()
	m.built = true
}

func (m *KeywordMatcher) insert(index int, keyword string) {
	node := m.root
	for _, ch := range keyword {
		if node.children[ch] == nil {
			node.children[ch] = newACNode()
		}
		node = node.children[ch]
	}
	node.output = append(node.output, index)
}

// buildFailureLinks wires suffix links breadth-first so a failed match
// resumes at the longest matching prefix instead of the root.
func (m *KeywordMatcher) buildFailureLinks() {
	queue := make([]*acNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = m.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// Search returns every keyword occurrence in text, in scan order.
func (m *KeywordMatcher) Search(text string) []Match {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.built || len(m.keywords) == 0 {
		return nil
	}

	var matches []Match
	node := m.root

	for i, ch := range strings.ToLower(text) {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]

		for _, idx := range node.output {
			kw := m.keywords[idx]
			matches = append(matches, Match{
				Keyword:  kw,
				Position: i - len(kw) + 1,
			})
		}
	}

	return matches
}

// Contains reports whether any keyword occurs in text. Stops at the first
// hit.
func (m *KeywordMatcher) Contains(text string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.built || len(m.keywords) == 0 {
		return false
	}

	node := m.root
	for _, ch := range strings.ToLower(text) {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]
		if len(node.output) > 0 {
			return true
		}
	}

	return false
}

// DistinctKeywords returns the set of distinct keywords found in text.
func (m *KeywordMatcher) DistinctKeywords(text string) []string {
	matches := m.Search(text)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var out []string
	for _, match := range matches {
		if !seen[match.Keyword] {
			seen[match.Keyword] = true
			out = append(out, match.Keyword)
		}
	}
	return out
}

// KeywordCount returns the number of keywords in the matcher.
func (m *KeywordMatcher) KeywordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keywords)
}
