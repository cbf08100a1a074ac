package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
source:
  name: jinshi
  url: https://example.com/flash
  item_selector: ".flash-item"
  text_selector: ".flash-text"
  time_selector: ".flash-time"

timezone: Asia/Shanghai

database:
  dsn: "file:test.db?cache=shared"
  max_open_conns: 20

llm:
  endpoint: http://localhost:11434/v1
  model: llama3
  temperature: 0.7

telegram:
  bot_token: "123:abc"
  chat_id: "@digest"

digest:
  header: "*Daily*"
  blocked:
    - advertisement
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jinshi", cfg.Source.Name)
	assert.Equal(t, "https://example.com/flash", cfg.Source.URL)
	assert.Equal(t, ".flash-item", cfg.Source.ItemSelector)
	assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
	assert.Equal(t, "file:test.db?cache=shared", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "@digest", cfg.Telegram.ChatID)
	assert.Equal(t, []string{"advertisement"}, cfg.Digest.Blocked)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
source:
  name: jinshi
  feed_url: https://example.com/rss

llm:
  model: gpt-4o-mini
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "NewsDigest/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "Markdown", cfg.Telegram.ParseMode)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "secret-token")
	t.Setenv("TEST_API_KEY", "secret-key")

	path := writeConfig(t, `
source:
  name: jinshi
  feed_url: https://example.com/rss

llm:
  model: gpt-4o-mini
  api_key: ${TEST_API_KEY}

telegram:
  bot_token: ${TEST_BOT_TOKEN}
  chat_id: "@digest"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.Telegram.BotToken)
	assert.Equal(t, "secret-key", cfg.LLM.APIKey)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing source name",
			content: "source:\n  feed_url: https://example.com/rss\nllm:\n  model: m\n",
			errMsg:  "source.name is required",
		},
		{
			name:    "missing source url and feed url",
			content: "source:\n  name: s\nllm:\n  model: m\n",
			errMsg:  "one of source.url or source.feed_url is required",
		},
		{
			name:    "html source without item selector",
			content: "source:\n  name: s\n  url: https://example.com\nllm:\n  model: m\n",
			errMsg:  "source.item_selector is required",
		},
		{
			name:    "invalid timezone",
			content: "source:\n  name: s\n  feed_url: https://example.com/rss\ntimezone: Mars/Olympus\nllm:\n  model: m\n",
			errMsg:  "not a valid IANA zone",
		},
		{
			name:    "missing llm model",
			content: "source:\n  name: s\n  feed_url: https://example.com/rss\n",
			errMsg:  "llm.model is required",
		},
		{
			name:    "temperature out of range",
			content: "source:\n  name: s\n  feed_url: https://example.com/rss\nllm:\n  model: m\n  temperature: 3.5\n",
			errMsg:  "temperature must be between 0 and 2",
		},
		{
			name:    "server timeout too small",
			content: "source:\n  name: s\n  feed_url: https://example.com/rss\nllm:\n  model: m\nserver:\n  timeout: 100ms\n",
			errMsg:  "server timeout must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "source: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Shanghai"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())

	cfg.Timezone = "Nowhere/Nothing"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestConfig_Getters(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 5 * time.Second
	cfg.LLM.Model = "gpt-4o-mini"

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 5*time.Second, timeout)
	assert.Equal(t, "gpt-4o-mini", cfg.GetLLMConfig().Model)
}
