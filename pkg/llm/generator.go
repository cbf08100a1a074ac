// Package llm adapts an OpenAI-compatible API as the text generation port.
package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"newsdigest/pkg/config"
	"newsdigest/pkg/domain"
)

// Generator calls an OpenAI-compatible chat completion API
type Generator struct {
	client *openai.Client
	config config.LLMConfig
}

// NewGenerator creates a new LLM generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Generate sends the prompt in a single attempt and returns the raw response
// text with the model that produced it. Retry policy belongs to the caller's
// infrastructure, not here.
func (g *Generator) Generate(ctx context.Context, prompt string) (domain.Generation, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.Generation{}, fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.Generation{}, fmt.Errorf("no response from llm")
	}

	model := resp.Model
	if model == "" {
		model = g.config.Model
	}

	return domain.Generation{Text: resp.Choices[0].Message.Content, Model: model}, nil
}
