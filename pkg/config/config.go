package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Source SourceConfig `yaml:"source" json:"source" jsonschema:"description=News source configuration"`

	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=IANA timezone used to resolve scraped clock values"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdigest.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for digest generation"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram publishing configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest assembly and filtering configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration (service mode only)"`
}

// SourceConfig describes the single feed this instance ingests
type SourceConfig struct {
	Name         string        `yaml:"name" json:"name" jsonschema:"required,description=Opaque source key stored with every item"`
	URL          string        `yaml:"url" json:"url" jsonschema:"description=Page URL for the HTML scraper"`
	FeedURL      string        `yaml:"feed_url" json:"feed_url" jsonschema:"description=RSS/Atom URL; when set the RSS adapter is used instead of the HTML scraper"`
	ItemSelector string        `yaml:"item_selector" json:"item_selector" jsonschema:"description=CSS selector for one news item"`
	TextSelector string        `yaml:"text_selector" json:"text_selector" jsonschema:"description=CSS selector for the item text, relative to the item"`
	TimeSelector string        `yaml:"time_selector" json:"time_selector" jsonschema:"description=CSS selector for the item time string, relative to the item"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsDigest/1.0,description=User agent for scraping requests"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Scrape request timeout"`
}

// LLMConfig holds LLM settings for digest generation
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	Prompt      string        `yaml:"prompt" json:"prompt" jsonschema:"description=Instruction header for the digest prompt (optional, overrides the built-in one)"`
}

// TelegramConfig holds Telegram bot API settings
type TelegramConfig struct {
	BotToken  string        `yaml:"bot_token" json:"bot_token" jsonschema:"description=Bot token (can use environment variable)"`
	ChatID    string        `yaml:"chat_id" json:"chat_id" jsonschema:"description=Target chat or channel id"`
	ParseMode string        `yaml:"parse_mode" json:"parse_mode" jsonschema:"default=Markdown,description=Telegram parse mode for the digest text"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// DigestConfig holds digest assembly and selection filtering settings
type DigestConfig struct {
	Header  string   `yaml:"header" json:"header" jsonschema:"description=Markdown header prepended to every digest"`
	Footer  string   `yaml:"footer" json:"footer" jsonschema:"description=Markdown footer appended to every digest"`
	Blocked []string `yaml:"blocked" json:"blocked" jsonschema:"description=Stop-list terms; matching items are marked processed without reaching the model"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for source
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "NewsDigest/1.0"
	}
	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = 30 * time.Second
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 1000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// set defaults for telegram
	if cfg.Telegram.ParseMode == "" {
		cfg.Telegram.ParseMode = "Markdown"
	}
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate source config
	if cfg.Source.Name == "" {
		return fmt.Errorf("source.name is required")
	}
	if cfg.Source.URL == "" && cfg.Source.FeedURL == "" {
		return fmt.Errorf("one of source.url or source.feed_url is required")
	}
	if cfg.Source.URL != "" && cfg.Source.ItemSelector == "" {
		return fmt.Errorf("source.item_selector is required for the HTML scraper")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone %q is not a valid IANA zone", cfg.Timezone)
	}

	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
