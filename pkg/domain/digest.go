package domain

import "time"

// Digest represents one generated summary post
type Digest struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Text          string
	Published     bool
	SourceItemIDs []int64  // ids of news items folded into this digest, set once at creation
	SourceTexts   []string // exact texts sent to the language model, kept for traceability
	LLMModel      string
	PublishedAt   *time.Time
	ExternalID    string // publisher-assigned message id, optional
}

// Generation is the result of one language model call
type Generation struct {
	Text  string
	Model string
}
