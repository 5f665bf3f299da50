package domain

import (
	"fmt"
	"strings"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// Default rewrite settings, matching the layout produced by a front-end build
// served through the `static` template tag.
const (
	DefaultStaticPrefix  = "/static/"
	DefaultLoadTag       = "{% load static %}\n"
	DefaultTemplateOpen  = "{%"
	DefaultTemplateClose = "%}"
)

// RewriteConfig holds the tables and markers that drive asset link rewriting.
// It is passed explicitly to every component; nothing here is process-wide.
type RewriteConfig struct {
	// TagAttrs maps an element name to the attribute holding its asset reference.
	TagAttrs map[m.Tag]string
	// StaticPrefix is removed (first occurrence only) from local references.
	StaticPrefix string
	// LoadTag is written as the first line of every output document.
	LoadTag string
	// TemplateOpen and TemplateClose delimit template expressions.
	TemplateOpen  string
	TemplateClose string
	// ExternalPrefixes mark references that are never rewritten.
	ExternalPrefixes []string
	// Categories maps each category to its static directory.
	Categories map[m.Category]string
	// Extensions optionally maps a lower-case file extension (".svg") to a
	// category. When empty the js → css → images priority rule applies alone.
	Extensions map[string]m.Category
}

// DefaultRewriteConfig returns the stock tag table, markers and directories.
func DefaultRewriteConfig() RewriteConfig {
	return RewriteConfig{
		TagAttrs: map[m.Tag]string{
			m.TagLink:   "href",
			m.TagScript: "src",
			m.TagImg:    "src",
		},
		StaticPrefix:     DefaultStaticPrefix,
		LoadTag:          DefaultLoadTag,
		TemplateOpen:     DefaultTemplateOpen,
		TemplateClose:    DefaultTemplateClose,
		ExternalPrefixes: []string{"https://"},
		Categories: map[m.Category]string{
			m.CategoryJS:    "js",
			m.CategoryCSS:   "css",
			m.CategoryImage: "images",
		},
	}
}

// Validate reports the first missing piece of configuration, wrapped in ErrInvalidConfig.
func (c RewriteConfig) Validate() error {
	if len(c.TagAttrs) == 0 {
		return fmt.Errorf("%w: tag table is empty", ErrInvalidConfig)
	}

	for tag, attr := range c.TagAttrs {
		if strings.TrimSpace(attr) == "" {
			return fmt.Errorf("%w: tag %q has no reference attribute", ErrInvalidConfig, tag)
		}
	}

	if c.TemplateOpen == "" || c.TemplateClose == "" {
		return fmt.Errorf("%w: template markers must not be empty", ErrInvalidConfig)
	}

	for _, category := range []m.Category{m.CategoryJS, m.CategoryCSS, m.CategoryImage} {
		if strings.Trim(c.Categories[category], "/ ") == "" {
			return fmt.Errorf("%w: no directory for category %q", ErrInvalidConfig, category)
		}
	}

	for ext, category := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}

		if _, ok := c.Categories[category]; !ok {
			return fmt.Errorf("%w: extension %q maps to unknown category %q", ErrInvalidConfig, ext, category)
		}
	}

	return nil
}
