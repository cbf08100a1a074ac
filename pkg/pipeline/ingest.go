// Package pipeline contains the ingestion and digest publishing workflows
// and the boot sequence that runs them in order.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"newsdigest/pkg/content"
	"newsdigest/pkg/domain"
)

//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/ingest_store.go -pkg mocks -skip-ensure -fmt goimports . IngestStore

// Scraper obtains ordered news candidates for the source
type Scraper interface {
	ScrapeLatest(ctx context.Context) ([]domain.Candidate, error)
}

// IngestStore is the store view the ingestion pipeline needs
type IngestStore interface {
	ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]struct{}, error)
	CreateItems(ctx context.Context, items []domain.NewsItem) (int, error)
}

// IngestResult reports one ingestion run
type IngestResult struct {
	Source        string `json:"source"`
	DryRun        bool   `json:"dry_run"`
	ScrapedCount  int    `json:"scraped_count"`
	NewItemsCount int    `json:"new_items_count"`
	StoredCount   int    `json:"stored_count"`
	DurationMs    int64  `json:"duration_ms"`
}

// Ingest coordinates scrape, normalize, hash, dedup-filter and store for one source
type Ingest struct {
	source   string
	scraper  Scraper
	store    IngestStore
	resolver *content.TimeResolver
}

// NewIngest creates the ingestion pipeline
func NewIngest(source string, scraper Scraper, store IngestStore, resolver *content.TimeResolver) *Ingest {
	return &Ingest{source: source, scraper: scraper, store: store, resolver: resolver}
}

// Run executes one ingestion pass. Scraper and store errors propagate
// unmodified; there is no retry here.
func (p *Ingest) Run(ctx context.Context, dryRun bool) (IngestResult, error) {
	start := time.Now()
	res := IngestResult{Source: p.source, DryRun: dryRun}
	lgr.Printf("[INFO] ingest started, source %s, dry run %v", p.source, dryRun)

	candidates, err := p.scraper.ScrapeLatest(ctx)
	if err != nil {
		lgr.Printf("[WARN] ingest failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("scrape source %s: %w", p.source, err)
	}
	res.ScrapedCount = len(candidates)
	lgr.Printf("[INFO] scraped %d candidates from %s in %v", len(candidates), p.source, time.Since(start))

	items, fingerprints := p.prepare(candidates)

	fresh, err := p.dedup(ctx, items, fingerprints)
	if err != nil {
		lgr.Printf("[WARN] ingest failed after %v: %v", time.Since(start), err)
		return res, err
	}
	res.NewItemsCount = len(fresh)
	lgr.Printf("[INFO] dedup filter kept %d of %d candidates", len(fresh), len(items))

	if len(fresh) == 0 {
		res.DurationMs = time.Since(start).Milliseconds()
		lgr.Printf("[INFO] ingest completed, nothing new, source %s, duration %v", p.source, time.Since(start))
		return res, nil
	}

	if !dryRun {
		stored, err := p.store.CreateItems(ctx, fresh)
		if err != nil {
			lgr.Printf("[WARN] ingest failed after %v: %v", time.Since(start), err)
			return res, fmt.Errorf("store items: %w", err)
		}
		res.StoredCount = stored
	}

	res.DurationMs = time.Since(start).Milliseconds()
	lgr.Printf("[INFO] ingest completed, source %s, new %d, stored %d, duration %v",
		p.source, res.NewItemsCount, res.StoredCount, time.Since(start))
	return res, nil
}

// prepare normalizes candidates, drops empty ones, resolves published times
// and computes fingerprints. A full publication time from the scraper wins
// over the clock resolver: resolving is for sources that only expose HH:mm,
// and reinterpreting a dated item as today would change its fingerprint on
// every run.
func (p *Ingest) prepare(candidates []domain.Candidate) (items []domain.NewsItem, fingerprints []string) {
	for _, cand := range candidates {
		text := content.Normalize(cand.Text)
		if text == "" {
			continue
		}

		publishedAt := cand.PublishedAt
		if publishedAt == nil {
			publishedAt = p.resolver.Resolve(cand.TimeText)
		}
		fp := content.Fingerprint(p.source, text, publishedAt)

		items = append(items, domain.NewsItem{
			Source:      p.source,
			Fingerprint: fp,
			Text:        text,
			PublishedAt: publishedAt,
			MediaType:   cand.MediaType,
			MediaURL:    cand.MediaURL,
		})
		fingerprints = append(fingerprints, fp)
	}
	return items, fingerprints
}

// dedup excludes items whose fingerprint is already stored. The unique index
// on fingerprint remains the authoritative guard; insert-or-ignore silently
// drops anything that races past this filter.
func (p *Ingest) dedup(ctx context.Context, items []domain.NewsItem, fingerprints []string) ([]domain.NewsItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	existing, err := p.store.ExistingFingerprints(ctx, fingerprints)
	if err != nil {
		return nil, fmt.Errorf("check existing fingerprints: %w", err)
	}

	fresh := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if _, ok := existing[item.Fingerprint]; ok {
			continue
		}
		fresh = append(fresh, item)
	}
	return fresh, nil
}
