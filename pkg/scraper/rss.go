package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"newsdigest/pkg/config"
	"newsdigest/pkg/domain"
)

// RSSScraper adapts an RSS/Atom feed as a candidate source
type RSSScraper struct {
	feedURL  string
	timeout  time.Duration
	parser   *gofeed.Parser
	sanitize *bluemonday.Policy
}

// NewRSSScraper creates a scraper for the configured feed
func NewRSSScraper(cfg config.SourceConfig) *RSSScraper {
	parser := gofeed.NewParser()
	parser.UserAgent = cfg.UserAgent

	return &RSSScraper{
		feedURL:  cfg.FeedURL,
		timeout:  cfg.Timeout,
		parser:   parser,
		sanitize: bluemonday.StrictPolicy(), // feed descriptions carry markup, keep text only
	}
}

// ScrapeLatest fetches and parses the feed, returning candidates in feed order
func (s *RSSScraper) ScrapeLatest(ctx context.Context) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feedURL, err)
	}

	candidates := make([]domain.Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		cand := domain.Candidate{Text: s.itemText(item)}

		// feeds carry full dates, use the parsed time directly; the raw
		// string goes into TimeText only as a last resort so the clock
		// resolver never turns an old item into a today one
		switch {
		case item.PublishedParsed != nil:
			cand.PublishedAt = item.PublishedParsed
		case item.UpdatedParsed != nil:
			cand.PublishedAt = item.UpdatedParsed
		case item.Published != "":
			cand.TimeText = item.Published
		default:
			cand.TimeText = item.Updated
		}

		if item.Image != nil && item.Image.URL != "" {
			cand.MediaType = "image"
			cand.MediaURL = item.Image.URL
		}

		candidates = append(candidates, cand)
	}

	return candidates, nil
}

// itemText combines title and sanitized description into one flash text
func (s *RSSScraper) itemText(item *gofeed.Item) string {
	title := strings.TrimSpace(item.Title)
	desc := strings.TrimSpace(s.sanitize.Sanitize(item.Description))

	switch {
	case title == "":
		return desc
	case desc == "":
		return title
	default:
		return title + ". " + desc
	}
}
