package domain

import (
	"log/slog"

	"golang.org/x/net/html"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// Rewriter replaces local asset references in a parsed document.
type Rewriter interface {
	// RewriteDocument mutates doc in place and returns the performed rewrites in
	// document order along with the number of references left untouched.
	RewriteDocument(doc *html.Node) ([]m.Rewrite, int)
}

type rewriter struct {
	config RewriteConfig
}

// NewRewriter creates a Rewriter driven by config.
func NewRewriter(config RewriteConfig) Rewriter {
	return &rewriter{config: config}
}

func (r *rewriter) RewriteDocument(doc *html.Node) ([]m.Rewrite, int) {
	var (
		rewrites []m.Rewrite
		skipped  int
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if rw, status := r.rewriteElement(n); status == m.ReferenceLocal {
				rewrites = append(rewrites, rw)
			} else if status != m.ReferenceMissing {
				skipped++
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if doc != nil {
		walk(doc)
	}

	return rewrites, skipped
}

// rewriteElement rewrites the reference attribute of n when n is an asset element.
// Elements that are not asset elements report ReferenceMissing.
func (r *rewriter) rewriteElement(n *html.Node) (m.Rewrite, m.ReferenceKind) {
	tag := m.Tag(n.Data)

	attrName, ok := r.config.TagAttrs[tag]
	if !ok {
		return m.Rewrite{}, m.ReferenceMissing
	}

	for i, attr := range n.Attr {
		if attr.Namespace != "" || attr.Key != attrName {
			continue
		}

		rw, ok := r.config.RewriteReference(attr.Val)
		if !ok {
			kind := r.config.Kind(attr.Val)
			slog.Debug("reference left untouched", "tag", tag, "value", attr.Val, "kind", kind.String())

			return m.Rewrite{}, kind
		}

		rw.Tag = tag
		rw.Attr = attrName
		n.Attr[i].Val = rw.Replacement

		slog.Debug("reference rewritten", "tag", tag, "from", rw.Original, "to", rw.Replacement)

		return rw, m.ReferenceLocal
	}

	return m.Rewrite{}, m.ReferenceMissing
}
