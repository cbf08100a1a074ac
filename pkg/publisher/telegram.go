// Package publisher delivers assembled digests to external channels.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"newsdigest/pkg/config"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram posts digests to a chat via the bot API
type Telegram struct {
	token     string
	chatID    string
	parseMode string
	apiBase   string
	client    *http.Client
}

// NewTelegram registers bot token and chat identifier
func NewTelegram(cfg config.TelegramConfig) *Telegram {
	return &Telegram{
		token:     cfg.BotToken,
		chatID:    cfg.ChatID,
		parseMode: cfg.ParseMode,
		apiBase:   telegramAPIBase,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Publish posts a message to the configured chat and returns the
// publisher-assigned message id. The id is best effort: an unparseable
// success response yields an empty id, not an error.
func (t *Telegram) Publish(ctx context.Context, text string) (string, error) {
	if t.token == "" || t.chatID == "" {
		return "", fmt.Errorf("telegram publisher misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	form := url.Values{}
	form.Set("chat_id", t.chatID)
	form.Set("text", text)
	if t.parseMode != "" {
		form.Set("parse_mode", t.parseMode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("telegram error: %s, %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return extractMessageID(resp.Body), nil
}

// extractMessageID pulls result.message_id from a sendMessage response
func extractMessageID(body io.Reader) string {
	var parsed struct {
		OK     bool `json:"ok"`
		Result struct {
			MessageID int64 `json:"message_id"`
		} `json:"result"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err != nil || !parsed.OK || parsed.Result.MessageID == 0 {
		return ""
	}
	return strconv.FormatInt(parsed.Result.MessageID, 10)
}
