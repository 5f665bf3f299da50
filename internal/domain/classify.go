package domain

import (
	"fmt"
	"path"
	"strings"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// Kind classifies a present reference value.
func (c RewriteConfig) Kind(ref string) m.ReferenceKind {
	for _, prefix := range c.ExternalPrefixes {
		if prefix != "" && strings.HasPrefix(ref, prefix) {
			return m.ReferenceExternal
		}
	}

	if c.IsTemplateExpression(ref) {
		return m.ReferenceTemplate
	}

	return m.ReferenceLocal
}

// IsTemplateExpression reports whether value is already wrapped in template delimiters.
func (c RewriteConfig) IsTemplateExpression(value string) bool {
	return strings.HasPrefix(value, c.TemplateOpen) && strings.HasSuffix(value, c.TemplateClose)
}

// Clean removes the first occurrence of the static prefix from ref.
func (c RewriteConfig) Clean(ref string) string {
	if c.StaticPrefix == "" {
		return ref
	}

	return strings.Replace(ref, c.StaticPrefix, "", 1)
}

// Classify derives the category of a cleaned local path.
//
// Priority is js, then css, then images for everything else (fonts, svg, ico...).
// An explicit extension table, when configured, is consulted first.
func (c RewriteConfig) Classify(p string) m.Category {
	if len(c.Extensions) > 0 {
		if category, ok := c.Extensions[strings.ToLower(path.Ext(p))]; ok {
			return category
		}
	}

	switch {
	case strings.HasSuffix(p, ".js"):
		return m.CategoryJS
	case strings.HasSuffix(p, ".css"):
		return m.CategoryCSS
	}

	return m.CategoryImage
}

// Resolve roots p under the directory of category, unless p already lives
// under one of the category directories.
func (c RewriteConfig) Resolve(p string, category m.Category) string {
	if _, ok := c.categoryDirOf(p); ok {
		return p
	}

	return c.dir(category) + "/" + p
}

// Expression wraps a resolved path into a static asset template expression.
func (c RewriteConfig) Expression(resolved string) string {
	return fmt.Sprintf("%s static '%s' %s", c.TemplateOpen, resolved, c.TemplateClose)
}

// RewriteReference computes the rewrite for a reference value.
// It returns false when the value is external or already a template expression.
func (c RewriteConfig) RewriteReference(ref string) (m.Rewrite, bool) {
	if c.Kind(ref) != m.ReferenceLocal {
		return m.Rewrite{}, false
	}

	cleaned := c.Clean(ref)

	category, underDir := c.categoryDirOf(cleaned)
	if !underDir {
		category = c.Classify(cleaned)
	}

	resolved := c.Resolve(cleaned, category)

	return m.Rewrite{
		Original:    ref,
		Resolved:    resolved,
		Category:    category,
		Replacement: c.Expression(resolved),
	}, true
}

// categoryDirOf returns the category whose directory p starts with.
func (c RewriteConfig) categoryDirOf(p string) (m.Category, bool) {
	for _, category := range []m.Category{m.CategoryJS, m.CategoryCSS, m.CategoryImage} {
		if strings.HasPrefix(p, c.dir(category)+"/") {
			return category, true
		}
	}

	return "", false
}

func (c RewriteConfig) dir(category m.Category) string {
	return strings.Trim(c.Categories[category], "/")
}

// StripLoadTag removes a leading load line left by a previous run.
func (c RewriteConfig) StripLoadTag(content []byte) []byte {
	tag := strings.TrimRight(c.LoadTag, "\r\n")
	if tag == "" {
		return content
	}

	text := string(content)
	if !strings.HasPrefix(text, tag) {
		return content
	}

	text = strings.TrimPrefix(text, tag)
	text = strings.TrimPrefix(text, "\r")
	text = strings.TrimPrefix(text, "\n")

	return []byte(text)
}

// PrependLoadTag returns rendered prefixed with the load line.
func (c RewriteConfig) PrependLoadTag(rendered []byte) []byte {
	out := make([]byte, 0, len(c.LoadTag)+len(rendered))
	out = append(out, c.LoadTag...)

	return append(out, rendered...)
}
