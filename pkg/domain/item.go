package domain

import "time"

// NewsItem represents one ingested piece of content
type NewsItem struct {
	ID          int64
	Source      string
	Fingerprint string
	Text        string
	PublishedAt *time.Time // nil when the source time could not be resolved
	ScrapedAt   time.Time
	Processed   bool
	MediaType   string
	MediaURL    string
}

// Candidate is a scraped item before normalization and storage. A source
// that knows the full publication time sets PublishedAt; TimeText is the
// fallback for sources exposing only a partial clock value.
type Candidate struct {
	Text        string
	TimeText    string     // raw locale-formatted time string as scraped, e.g. "23:55"
	PublishedAt *time.Time // full publication time when the source provides one
	MediaType   string
	MediaURL    string
}

// SelectedItem is an unprocessed item picked for digest generation,
// keeps the id so the digest can trace back to its sources
type SelectedItem struct {
	ID   int64
	Text string
}
