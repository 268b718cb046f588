// Package strings provides string manipulation utilities.
package strings

import (
	"regexp"
	"strings"
)

// nonWord matches runs of characters that are not letters, digits or
// underscores. Combining marks count as part of a letter.
var nonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_]+`)

// Fold lowercases s.
//
// Example:
//
//	Fold("J287011")
//	// Returns: "j287011"
func Fold(s string) string {
	return strings.ToLower(s)
}

// FoldWords lowercases s and replaces every run of non-word characters with
// a single space. Leading and trailing runs become a single space too, so the
// result is stable under repeated application.
//
// Example:
//
//	FoldWords("HERRERA-BUITRAGO")
//	// Returns: "herrera buitrago"
func FoldWords(s string) string {
	if s == "" {
		return s
	}
	return nonWord.ReplaceAllString(strings.ToLower(s), " ")
}
