package publisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/pkg/config"
)

func newTestTelegram(t *testing.T, handler http.HandlerFunc) *Telegram {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tg := NewTelegram(config.TelegramConfig{
		BotToken:  "123:abc",
		ChatID:    "@digest",
		ParseMode: "Markdown",
		Timeout:   5 * time.Second,
	})
	tg.apiBase = srv.URL
	return tg
}

func TestTelegram_Publish(t *testing.T) {
	tg := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "@digest", r.PostForm.Get("chat_id"))
		assert.Equal(t, "- first\n- second", r.PostForm.Get("text"))
		assert.Equal(t, "Markdown", r.PostForm.Get("parse_mode"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"ok": true, "result": {"message_id": 4242}}`))
		require.NoError(t, err)
	})

	id, err := tg.Publish(context.Background(), "- first\n- second")
	require.NoError(t, err)
	assert.Equal(t, "4242", id)
}

func TestTelegram_Publish_UnparseableResponse(t *testing.T) {
	tg := newTestTelegram(t, func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte("not json at all"))
		require.NoError(t, err)
	})

	id, err := tg.Publish(context.Background(), "text")
	require.NoError(t, err, "message id is best effort, a 200 response is a success")
	assert.Empty(t, id)
}

func TestTelegram_Publish_APIError(t *testing.T) {
	tg := newTestTelegram(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
		require.NoError(t, err)
	})

	_, err := tg.Publish(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram error")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegram_Publish_Misconfigured(t *testing.T) {
	tg := NewTelegram(config.TelegramConfig{Timeout: time.Second})
	_, err := tg.Publish(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misconfigured")
}

func TestExtractMessageID(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "valid response", body: `{"ok": true, "result": {"message_id": 7}}`, expected: "7"},
		{name: "not ok", body: `{"ok": false, "result": {"message_id": 7}}`, expected: ""},
		{name: "zero id", body: `{"ok": true, "result": {"message_id": 0}}`, expected: ""},
		{name: "garbage", body: `garbage`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractMessageID(strings.NewReader(tt.body)))
		})
	}
}
