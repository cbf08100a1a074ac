// Package content canonicalizes scraped text, computes dedup fingerprints
// and resolves partial published-time strings to absolute timestamps.
package content

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize trims the text and collapses internal whitespace runs to single
// spaces. Normalization happens before hashing, so two scrapes of the same
// item that differ only in formatting produce the same fingerprint.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
