package convert

import (
	"errors"
	"fmt"

	"github.com/mithrel/nodehtml/pkg/htmlnode"
	"github.com/mithrel/nodehtml/pkg/textspan"
)

// ErrMissingURL is returned for link and image spans that carry no URL.
var ErrMissingURL = errors.New("span requires a url")

// SpanToLeaf converts a text span to the leaf node that renders it.
func SpanToLeaf(s textspan.Span) (htmlnode.Leaf, error) {
	switch s.Style {
	case textspan.Plain:
		return htmlnode.Text(s.Text), nil
	case textspan.Bold:
		return htmlnode.NewLeaf(htmlnode.Tag("b"), s.Text), nil
	case textspan.Italic:
		return htmlnode.NewLeaf(htmlnode.Tag("i"), s.Text), nil
	case textspan.Code:
		return htmlnode.NewLeaf(htmlnode.Tag("code"), s.Text), nil
	case textspan.Link:
		if !s.HasURL() {
			return htmlnode.Leaf{}, fmt.Errorf("link %q: %w", s.Text, ErrMissingURL)
		}
		return htmlnode.NewLeaf(htmlnode.Tag("a"), s.Text, htmlnode.P("href", *s.URL)...), nil
	case textspan.Image:
		if !s.HasURL() {
			return htmlnode.Leaf{}, fmt.Errorf("image %q: %w", s.Text, ErrMissingURL)
		}
		return htmlnode.NewLeaf(htmlnode.Tag("img"), "", htmlnode.P("src", *s.URL, "alt", s.Text)...), nil
	default:
		return htmlnode.Leaf{}, fmt.Errorf("%w: %s", textspan.ErrUnknownStyle, s.Style)
	}
}

// SpansToLeaves converts spans in order. It stops at the first span that
// cannot be converted.
func SpansToLeaves(spans []textspan.Span) ([]htmlnode.Node, error) {
	out := make([]htmlnode.Node, 0, len(spans))
	for i, s := range spans {
		l, err := SpanToLeaf(s)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// Paragraph converts spans and wraps them in a parent with the given tag.
// An empty tag means "p".
func Paragraph(spans []textspan.Span, tag string) (htmlnode.Parent, error) {
	if tag == "" {
		tag = "p"
	}
	children, err := SpansToLeaves(spans)
	if err != nil {
		return htmlnode.Parent{}, err
	}
	return htmlnode.NewParent(htmlnode.Tag(tag), children), nil
}
