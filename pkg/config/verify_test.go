package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{}
		cfg.Source.Name = "jinshi"
		cfg.LLM.Model = "gpt-4o-mini"
		assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("missing source name", func(t *testing.T) {
		cfg := &Config{}
		cfg.LLM.Model = "gpt-4o-mini"
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source.name")
	})

	t.Run("missing llm model", func(t *testing.T) {
		cfg := &Config{}
		cfg.Source.Name = "jinshi"
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.model")
	})
}

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Contains(t, schema, "$schema")
}
