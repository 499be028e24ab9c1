// Package textspan holds the pre-rendering representation of inline text:
// a run of literal text, its style and an optional link target.
package textspan

// Span is one run of formatted inline text. URL is only meaningful for Link
// and Image spans; nil means absent. Spans are values and are not validated.
type Span struct {
	Text  string  `json:"text"`
	Style Style   `json:"style"`
	URL   *string `json:"url,omitempty"`
}

// New returns a span without a URL.
func New(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// NewWithURL returns a span with a URL.
func NewWithURL(text string, style Style, url string) Span {
	return Span{Text: text, Style: style, URL: &url}
}

// Equal reports whether s and o have the same text, style and URL. URLs are
// compared by value.
func (s Span) Equal(o Span) bool {
	if s.Text != o.Text || s.Style != o.Style {
		return false
	}
	if s.URL == nil || o.URL == nil {
		return s.URL == nil && o.URL == nil
	}
	return *s.URL == *o.URL
}

// HasURL reports whether the span carries a URL.
func (s Span) HasURL() bool { return s.URL != nil }

// URLString returns the URL or "" when absent.
func (s Span) URLString() string {
	if s.URL == nil {
		return ""
	}
	return *s.URL
}

// WithURL returns a copy of s with the given URL.
func (s Span) WithURL(url string) Span {
	s.URL = &url
	return s
}

// WithoutURL returns a copy of s with no URL.
func (s Span) WithoutURL() Span {
	s.URL = nil
	return s
}
