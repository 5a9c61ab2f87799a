// Package slug derives URL-safe identifiers from free-text titles.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Generate converts title to a slug.
//
// The transformation rules are:
//   - Leading and trailing whitespace is trimmed
//   - Every run of characters outside [a-zA-Z0-9] becomes a single dash
//   - Leading and trailing dashes are removed
//   - The result is lower-cased
//
// An empty result means "no slug yet" and must never be used as a key.
//
// Example:
//
//	Generate("Luxury Apartment in Downtown!!") // "luxury-apartment-in-downtown"
//	Generate("  ***  ")                        // ""
func Generate(title string) string {
	if title == "" {
		return ""
	}
	s := nonAlnumRun.ReplaceAllString(strings.TrimSpace(title), "-")
	return strings.ToLower(strings.Trim(s, "-"))
}

// NeedsRegeneration reports whether a slug derived from originalTitle is stale.
func NeedsRegeneration(currentTitle, originalTitle string) bool {
	return currentTitle != originalTitle
}
