// Package scraper provides source adapters that fetch ordered news
// candidates; no hashing or persistence happens here.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdigest/pkg/config"
	"newsdigest/pkg/domain"
)

// HTMLScraper extracts news candidates from a page using CSS selectors
type HTMLScraper struct {
	url          string
	itemSelector string
	textSelector string
	timeSelector string
	userAgent    string
	client       *http.Client
}

// NewHTMLScraper creates a scraper for the configured source page
func NewHTMLScraper(cfg config.SourceConfig) *HTMLScraper {
	return &HTMLScraper{
		url:          cfg.URL,
		itemSelector: cfg.ItemSelector,
		textSelector: cfg.TextSelector,
		timeSelector: cfg.TimeSelector,
		userAgent:    cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ScrapeLatest fetches the source page and returns candidates in document order
func (s *HTMLScraper) ScrapeLatest(ctx context.Context) ([]domain.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page %s: unexpected status %s", s.url, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", s.url, err)
	}

	var candidates []domain.Candidate
	doc.Find(s.itemSelector).Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, s.extractCandidate(sel))
	})

	return candidates, nil
}

// extractCandidate pulls text, time string and media from one item node
func (s *HTMLScraper) extractCandidate(sel *goquery.Selection) domain.Candidate {
	cand := domain.Candidate{}

	if s.textSelector != "" {
		cand.Text = sel.Find(s.textSelector).Text()
	} else {
		cand.Text = sel.Text()
	}

	if s.timeSelector != "" {
		cand.TimeText = strings.TrimSpace(sel.Find(s.timeSelector).Text())
	}

	if src, ok := sel.Find("img").First().Attr("src"); ok && src != "" {
		cand.MediaType = "image"
		cand.MediaURL = src
	} else if src, ok := sel.Find("video source, video").First().Attr("src"); ok && src != "" {
		cand.MediaType = "video"
		cand.MediaURL = src
	}

	return cand
}
