package library

import (
	"strings"
	"unicode/utf8"
)

// Normalize produces the canonical form used for uniqueness comparisons:
// leading/trailing whitespace removed, lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimmedLength returns the rune count of s after removing leading and
// trailing whitespace.
func TrimmedLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
