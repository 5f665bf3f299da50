package adapter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// DocumentAdapter parses and renders HTML documents.
type DocumentAdapter interface {
	// Parse builds a document tree. Malformed markup is recovered, never rejected.
	Parse(content []byte) (*html.Node, error)

	// Render serializes doc back to UTF-8 bytes.
	Render(doc *html.Node) ([]byte, error)
}

// HTMLDocumentAdapter is the golang.org/x/net/html backed DocumentAdapter.
//
// html.Render entity-escapes quotes inside attribute values, which would turn
// {% static 'x' %} into {% static &#39;x&#39; %}. Attribute values wrapped in
// the template markers are therefore emitted verbatim.
type HTMLDocumentAdapter struct {
	templateOpen  string
	templateClose string
}

// NewHTMLDocumentAdapter creates an adapter that keeps attribute values
// delimited by templateOpen/templateClose unescaped.
func NewHTMLDocumentAdapter(templateOpen, templateClose string) *HTMLDocumentAdapter {
	return &HTMLDocumentAdapter{templateOpen: templateOpen, templateClose: templateClose}
}

// Parse parses content with the HTML5 parsing algorithm.
func (a *HTMLDocumentAdapter) Parse(content []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return doc, nil
}

// Render serializes doc. The tree is left exactly as it was passed in.
func (a *HTMLDocumentAdapter) Render(doc *html.Node) ([]byte, error) {
	raw := a.protect(doc)
	defer raw.restore()

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	if len(raw.values) == 0 {
		return buf.Bytes(), nil
	}

	return []byte(raw.replacer().Replace(buf.String())), nil
}

// rawAttr remembers an attribute value swapped for a placeholder during Render.
type rawAttr struct {
	node        *html.Node
	index       int
	value       string
	placeholder string
}

type rawAttrs struct {
	values []rawAttr
}

// protect swaps every template attribute value that html.Render would escape
// for a placeholder made only of characters that are never escaped.
func (a *HTMLDocumentAdapter) protect(doc *html.Node) *rawAttrs {
	raw := &rawAttrs{}
	if doc == nil || a.templateOpen == "" || a.templateClose == "" {
		return raw
	}

	nonce := uuid.NewString()

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for i, attr := range n.Attr {
				if !a.needsProtection(attr.Val) {
					continue
				}

				placeholder := fmt.Sprintf("assetlink:%s:%d:", nonce, len(raw.values))
				raw.values = append(raw.values, rawAttr{node: n, index: i, value: attr.Val, placeholder: placeholder})
				n.Attr[i].Val = placeholder
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return raw
}

func (a *HTMLDocumentAdapter) needsProtection(value string) bool {
	if !strings.HasPrefix(value, a.templateOpen) || !strings.HasSuffix(value, a.templateClose) {
		return false
	}

	// A double quote cannot be emitted raw inside a double-quoted attribute.
	if strings.Contains(value, `"`) {
		return false
	}

	return strings.ContainsAny(value, "&'<>")
}

func (r *rawAttrs) restore() {
	for _, v := range r.values {
		v.node.Attr[v.index].Val = v.value
	}
}

func (r *rawAttrs) replacer() *strings.Replacer {
	pairs := make([]string, 0, len(r.values)*2)
	for _, v := range r.values {
		pairs = append(pairs, v.placeholder, v.value)
	}

	return strings.NewReplacer(pairs...)
}
