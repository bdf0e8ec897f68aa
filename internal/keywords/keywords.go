// Package keywords implements the shared first-match-wins lookup over
// ordered keyword tables. The rulebook's classifications (persona guidance,
// ranking tiers, exclusion lists) are all declared as tables and consulted
// through this one function, so the tables stay auditable on their own.
package keywords

import "strings"

// Category pairs a category name with the substrings that select it.
type Category struct {
	Name     string
	Keywords []string
}

// Match scans the ordered table and returns the first category with any
// keyword appearing case-insensitively in s. Categories are checked in table
// order; within a category, any keyword hit wins.
func Match(table []Category, s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, cat := range table {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name, true
			}
		}
	}
	return "", false
}

// ContainsAny reports whether any keyword appears case-insensitively in s.
func ContainsAny(s string, kws []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FirstIndex returns the smallest offset in s at which any of the patterns
// matches case-insensitively, or -1 when none match.
func FirstIndex(s string, patterns []string) int {
	lower := strings.ToLower(s)
	first := -1
	for _, p := range patterns {
		if idx := strings.Index(lower, p); idx >= 0 && (first == -1 || idx < first) {
			first = idx
		}
	}
	return first
}
