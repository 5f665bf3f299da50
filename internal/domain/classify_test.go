package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

func TestRewriteConfig_Kind(t *testing.T) {
	cfg := DefaultRewriteConfig()

	tests := []struct {
		name string
		ref  string
		want m.ReferenceKind
	}{
		{"https url", "https://cdn.example.com/app.js", m.ReferenceExternal},
		{"template expression", "{% static 'js/app.js' %}", m.ReferenceTemplate},
		{"open marker only", "{% static 'js/app.js'", m.ReferenceLocal},
		{"plain http is local", "http://example.com/app.js", m.ReferenceLocal},
		{"static path", "/static/js/app.js", m.ReferenceLocal},
		{"bare file", "logo.png", m.ReferenceLocal},
		{"empty value", "", m.ReferenceLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Kind(tt.ref))
		})
	}
}

func TestRewriteConfig_Clean(t *testing.T) {
	cfg := DefaultRewriteConfig()

	assert.Equal(t, "js/app.js", cfg.Clean("/static/js/app.js"))
	assert.Equal(t, "app.js", cfg.Clean("app.js"))
	assert.Equal(t, "media/static/x.png", cfg.Clean("/static/media/static/x.png"), "only the first occurrence is removed")
	assert.Equal(t, "static/bar.css", cfg.Clean("static/bar.css"), "a prefix without the leading slash stays")

	cfg.StaticPrefix = ""
	assert.Equal(t, "/static/js/app.js", cfg.Clean("/static/js/app.js"))
}

func TestRewriteConfig_Classify(t *testing.T) {
	cfg := DefaultRewriteConfig()

	tests := []struct {
		path string
		want m.Category
	}{
		{"app.js", m.CategoryJS},
		{"main.chunk.css", m.CategoryCSS},
		{"logo.png", m.CategoryImage},
		{"font.woff2", m.CategoryImage},
		{"manifest.json", m.CategoryImage},
		{"app.jsx", m.CategoryImage},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Classify(tt.path))
		})
	}
}

func TestRewriteConfig_Classify_ExtensionTable(t *testing.T) {
	cfg := DefaultRewriteConfig()
	cfg.Extensions = map[string]m.Category{".woff2": m.CategoryCSS}

	assert.Equal(t, m.CategoryCSS, cfg.Classify("font.WOFF2"))
	assert.Equal(t, m.CategoryJS, cfg.Classify("app.js"), "unlisted extensions fall back to the priority rule")
}

func TestRewriteConfig_Resolve(t *testing.T) {
	cfg := DefaultRewriteConfig()

	assert.Equal(t, "js/app.js", cfg.Resolve("app.js", m.CategoryJS))
	assert.Equal(t, "css/style.css", cfg.Resolve("style.css", m.CategoryCSS))
	assert.Equal(t, "images/logo.png", cfg.Resolve("logo.png", m.CategoryImage))
	assert.Equal(t, "js/app.js", cfg.Resolve("js/app.js", m.CategoryJS))
	assert.Equal(t, "images/a/b.svg", cfg.Resolve("images/a/b.svg", m.CategoryImage))
	assert.Equal(t, "css/vendor.js", cfg.Resolve("css/vendor.js", m.CategoryJS), "existing category directory wins")
	assert.Equal(t, "css/cssreset.css", cfg.Resolve("cssreset.css", m.CategoryCSS), "directory match needs the slash")
}

func TestRewriteConfig_Expression(t *testing.T) {
	cfg := DefaultRewriteConfig()

	assert.Equal(t, "{% static 'css/style.css' %}", cfg.Expression("css/style.css"))
}

func TestRewriteConfig_RewriteReference(t *testing.T) {
	cfg := DefaultRewriteConfig()

	tests := []struct {
		name         string
		ref          string
		wantOK       bool
		wantReplaced string
		wantCategory m.Category
	}{
		{"stylesheet", "style.css", true, "{% static 'css/style.css' %}", m.CategoryCSS},
		{"script", "app.js", true, "{% static 'js/app.js' %}", m.CategoryJS},
		{"image", "logo.png", true, "{% static 'images/logo.png' %}", m.CategoryImage},
		{"static prefixed script", "/static/js/app.js", true, "{% static 'js/app.js' %}", m.CategoryJS},
		{"static prefixed media", "/static/media/logo.svg", true, "{% static 'images/media/logo.svg' %}", m.CategoryImage},
		{"already under images", "images/logo.png", true, "{% static 'images/logo.png' %}", m.CategoryImage},
		{"external", "https://cdn.example.com/x.js", false, "", ""},
		{"template", "{% static 'js/app.js' %}", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, ok := cfg.RewriteReference(tt.ref)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				assert.Equal(t, m.Rewrite{}, rw)
				return
			}

			assert.Equal(t, tt.ref, rw.Original)
			assert.Equal(t, tt.wantReplaced, rw.Replacement)
			assert.Equal(t, tt.wantCategory, rw.Category)
		})
	}
}

func TestRewriteConfig_RewriteReference_OutputIsSkippedOnSecondPass(t *testing.T) {
	cfg := DefaultRewriteConfig()

	for _, ref := range []string{"style.css", "app.js", "logo.png", "/static/js/app.js"} {
		rw, ok := cfg.RewriteReference(ref)
		assert.True(t, ok)

		_, again := cfg.RewriteReference(rw.Replacement)
		assert.False(t, again, "replacement %q must not be rewritten again", rw.Replacement)
	}
}

func TestRewriteConfig_LoadTag(t *testing.T) {
	cfg := DefaultRewriteConfig()

	t.Run("prepend", func(t *testing.T) {
		assert.Equal(t, "{% load static %}\n<html></html>", string(cfg.PrependLoadTag([]byte("<html></html>"))))
	})

	t.Run("strip previous load line", func(t *testing.T) {
		assert.Equal(t, "<html></html>", string(cfg.StripLoadTag([]byte("{% load static %}\n<html></html>"))))
	})

	t.Run("strip with windows newline", func(t *testing.T) {
		assert.Equal(t, "<html></html>", string(cfg.StripLoadTag([]byte("{% load static %}\r\n<html></html>"))))
	})

	t.Run("no load line", func(t *testing.T) {
		assert.Equal(t, "<html></html>", string(cfg.StripLoadTag([]byte("<html></html>"))))
	})
}
