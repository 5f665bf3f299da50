package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

func TestDefaultRewriteConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultRewriteConfig().Validate())
}

func TestRewriteConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RewriteConfig)
	}{
		{"empty tag table", func(c *RewriteConfig) { c.TagAttrs = nil }},
		{"blank attribute", func(c *RewriteConfig) { c.TagAttrs[m.TagImg] = " " }},
		{"missing open marker", func(c *RewriteConfig) { c.TemplateOpen = "" }},
		{"missing close marker", func(c *RewriteConfig) { c.TemplateClose = "" }},
		{"missing category dir", func(c *RewriteConfig) { delete(c.Categories, m.CategoryCSS) }},
		{"slash-only category dir", func(c *RewriteConfig) { c.Categories[m.CategoryJS] = "/" }},
		{"extension without dot", func(c *RewriteConfig) { c.Extensions = map[string]m.Category{"svg": m.CategoryImage} }},
		{"extension to unknown category", func(c *RewriteConfig) { c.Extensions = map[string]m.Category{".svg": "fonts"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRewriteConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
