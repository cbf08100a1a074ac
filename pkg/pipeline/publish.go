package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"newsdigest/pkg/digest"
	"newsdigest/pkg/domain"
)

//go:generate moq -out mocks/publish_store.go -pkg mocks -skip-ensure -fmt goimports . PublishStore
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/assembler.go -pkg mocks -skip-ensure -fmt goimports . Assembler
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// PublishStore is the store view the publishing pipeline needs
type PublishStore interface {
	UnprocessedItems(ctx context.Context) ([]domain.SelectedItem, error)
	MarkProcessed(ctx context.Context, ids []int64) error
	CreateWithProcessedItems(ctx context.Context, d *domain.Digest) error
	MarkPublished(ctx context.Context, id int64, text, externalID string) error
}

// Generator produces the digest text from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (domain.Generation, error)
}

// Assembler formats parsed digest items into the final post
type Assembler interface {
	Assemble(items []string) string
}

// Publisher delivers the assembled post to the external channel
type Publisher interface {
	Publish(ctx context.Context, text string) (string, error)
}

// PublishResult reports one digest publishing run
type PublishResult struct {
	SelectedNewsCount int    `json:"selected_news_count"`
	DigestID          *int64 `json:"digest_id"`
	Published         bool   `json:"is_published"`
	DurationMs        int64  `json:"duration_ms"`
}

// defaultPromptHeader is the fixed editorial instruction prepended to the
// JSON-serialized selection
const defaultPromptHeader = `You are the editor of a short news digest channel.
Below is a JSON array of raw news snippets. Produce the digest as follows:
- drop advertisements, duplicates and items with no news value
- group closely related snippets into a single digest entry
- rewrite every entry as one concise sentence, keep facts and numbers exact
- translate entries into English when needed
- keep the original order of the remaining entries
Respond with a JSON array of strings, one string per digest entry.
Respond with [] if nothing is worth publishing. No other output.`

// Publish coordinates select, generate, parse, assemble, persist and publish
type Publish struct {
	store        PublishStore
	generator    Generator
	assembler    Assembler
	publisher    Publisher
	promptHeader string
	blocked      []string
}

// NewPublish creates the digest publishing pipeline; promptHeader and
// blocked terms are optional
func NewPublish(store PublishStore, generator Generator, assembler Assembler, publisher Publisher,
	promptHeader string, blocked []string) *Publish {
	if promptHeader == "" {
		promptHeader = defaultPromptHeader
	}
	return &Publish{
		store:        store,
		generator:    generator,
		assembler:    assembler,
		publisher:    publisher,
		promptHeader: promptHeader,
		blocked:      blocked,
	}
}

// Run executes one publishing pass. Any model, parse, store or publish error
// propagates; the atomic persist step guarantees that a failure never leaves
// items half-processed, and a publish failure leaves a traceable pending
// digest behind.
func (p *Publish) Run(ctx context.Context) (PublishResult, error) {
	start := time.Now()
	res := PublishResult{}
	lgr.Printf("[INFO] digest publishing started")

	selected, err := p.store.UnprocessedItems(ctx)
	if err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("select unprocessed items: %w", err)
	}

	kept, err := p.applyStopList(ctx, selected)
	if err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, err
	}
	res.SelectedNewsCount = len(kept)

	if len(kept) == 0 {
		res.DurationMs = time.Since(start).Milliseconds()
		lgr.Printf("[INFO] digest publishing completed, no unprocessed items, duration %v", time.Since(start))
		return res, nil
	}

	ids := make([]int64, len(kept))
	texts := make([]string, len(kept))
	for i, item := range kept {
		ids[i] = item.ID
		texts[i] = item.Text
	}

	prompt, err := buildPrompt(p.promptHeader, texts)
	if err != nil {
		return res, err
	}

	gen, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("generate digest: %w", err)
	}

	items, err := digest.ParseItems(gen.Text)
	if err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("parse digest response: %w", err)
	}

	post := p.assembler.Assemble(items)

	d := &domain.Digest{
		Text:          post,
		SourceItemIDs: ids,
		SourceTexts:   texts,
		LLMModel:      gen.Model,
	}
	if err := p.store.CreateWithProcessedItems(ctx, d); err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("persist pending digest: %w", err)
	}
	res.DigestID = &d.ID

	if len(items) == 0 {
		// the model consumed the selection and judged nothing publishable,
		// the pending digest stays unpublished
		res.DurationMs = time.Since(start).Milliseconds()
		lgr.Printf("[INFO] digest publishing completed, digest %d has no items to publish, duration %v",
			d.ID, time.Since(start))
		return res, nil
	}

	externalID, err := p.publisher.Publish(ctx, post)
	if err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v, digest %d left pending: %v",
			time.Since(start), d.ID, err)
		return res, fmt.Errorf("publish digest %d: %w", d.ID, err)
	}

	if err := p.store.MarkPublished(ctx, d.ID, post, externalID); err != nil {
		lgr.Printf("[WARN] digest publishing failed after %v: %v", time.Since(start), err)
		return res, fmt.Errorf("mark digest %d published: %w", d.ID, err)
	}

	res.Published = true
	res.DurationMs = time.Since(start).Milliseconds()
	lgr.Printf("[INFO] digest publishing completed, digest %d, selected %d, duration %v",
		d.ID, res.SelectedNewsCount, time.Since(start))
	return res, nil
}

// applyStopList marks items matching a blocked term as processed and drops
// them from the selection before the model sees anything
func (p *Publish) applyStopList(ctx context.Context, selected []domain.SelectedItem) ([]domain.SelectedItem, error) {
	if len(p.blocked) == 0 {
		return selected, nil
	}

	kept := make([]domain.SelectedItem, 0, len(selected))
	var filtered []int64
	for _, item := range selected {
		if p.matchesStopList(item.Text) {
			filtered = append(filtered, item.ID)
			continue
		}
		kept = append(kept, item)
	}

	if len(filtered) > 0 {
		if err := p.store.MarkProcessed(ctx, filtered); err != nil {
			return nil, fmt.Errorf("mark filtered items processed: %w", err)
		}
		lgr.Printf("[INFO] stop-list filtered %d of %d items", len(filtered), len(selected))
	}
	return kept, nil
}

func (p *Publish) matchesStopList(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range p.blocked {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// buildPrompt produces the deterministic prompt: instruction header plus the
// JSON-serialized selection in selection order
func buildPrompt(header string, texts []string) (string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("serialize selection: %w", err)
	}
	return header + "\n\n" + string(payload), nil
}
