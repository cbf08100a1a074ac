package content

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Fingerprint computes the deduplication key for an item: SHA-256 over a
// fixed-field-order JSON serialization of source, normalized text and the
// resolved published time. The time is canonicalized to RFC3339 UTC, or JSON
// null when unknown, so the result does not depend on the scraper's locale
// or on upstream type mixing.
func Fingerprint(source, text string, publishedAt *time.Time) string {
	var ts *string
	if publishedAt != nil {
		v := publishedAt.UTC().Format(time.RFC3339)
		ts = &v
	}

	payload := struct {
		Source      string  `json:"source"`
		Text        string  `json:"text"`
		PublishedAt *string `json:"publishedAt"`
	}{Source: source, Text: text, PublishedAt: ts}

	data, _ := json.Marshal(payload) // marshal of a plain struct cannot fail
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
