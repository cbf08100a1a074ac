package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownAssembler_Assemble(t *testing.T) {
	t.Run("items only", func(t *testing.T) {
		a := &MarkdownAssembler{}
		assert.Equal(t, "- first\n- second", a.Assemble([]string{"first", "second"}))
	})

	t.Run("header and footer", func(t *testing.T) {
		a := &MarkdownAssembler{Header: "*Daily Digest*", Footer: "@channel"}
		expected := "*Daily Digest*\n\n- first\n- second\n\n@channel"
		assert.Equal(t, expected, a.Assemble([]string{"first", "second"}))
	})

	t.Run("header only", func(t *testing.T) {
		a := &MarkdownAssembler{Header: "*Daily Digest*"}
		assert.Equal(t, "*Daily Digest*\n\n- first", a.Assemble([]string{"first"}))
	})

	t.Run("no items", func(t *testing.T) {
		a := &MarkdownAssembler{Header: "*Daily Digest*", Footer: "@channel"}
		assert.Equal(t, "*Daily Digest*\n\n@channel", a.Assemble(nil))
	})

	t.Run("empty everything", func(t *testing.T) {
		a := &MarkdownAssembler{}
		assert.Equal(t, "", a.Assemble(nil))
	})
}
